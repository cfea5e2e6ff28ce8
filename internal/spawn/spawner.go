// Package spawn собирает полностью укомплектованные сущности.
// Ядро не проверяет комплектность компонентов - оно полагается на то,
// что спавнер выдал все обязательное для своего вида сущности.
package spawn

import (
	"fmt"

	"vortex-server/internal/domain"
	"vortex-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Параметры восприятия и базовые статы
const (
	VisionRadius = 8

	playerHP      = 30
	playerDefense = 2
	playerPower   = 5

	monsterHP      = 16
	monsterDefense = 1
	monsterPower   = 4
)

// Player создает единственного игрока и регистрирует его хэндл в мире
func Player(w *domain.World, pos domain.Position) domain.EntityID {
	id := w.Spawn()

	p := pos
	w.Positions[id] = &p
	w.Renderables[id] = &domain.Renderable{Glyph: '@', Color: "#22D3EE"}
	w.Names[id] = &domain.Name{Name: "Герой"}
	w.Views[id] = &domain.FieldOfView{Radius: VisionRadius}
	w.Stats[id] = &domain.CombatStats{
		MaxHP: playerHP, HP: playerHP,
		Defense: playerDefense, Power: playerPower,
	}
	w.Blockers[id] = &domain.BlocksTile{}

	w.Player = id
	w.PlayerPos = pos
	return id
}

// RandomMonster создает гоблина или орка (бросок мирового RNG)
func RandomMonster(w *domain.World, pos domain.Position) domain.EntityID {
	var glyph rune
	var color, name string

	// Орки пореже
	if w.Rng.Intn(4) == 0 {
		glyph, color, name = 'o', "#DC2626", "Свирепый Орк"
	} else {
		glyph, color, name = 'g', "#22C55E", "Хитрый Гоблин"
	}

	id := w.Spawn()

	p := pos
	w.Positions[id] = &p
	w.Renderables[id] = &domain.Renderable{Glyph: glyph, Color: color}
	w.Names[id] = &domain.Name{Name: fmt.Sprintf("%s #%d", name, id.Index())}
	w.Views[id] = &domain.FieldOfView{Radius: VisionRadius}
	w.Monsters[id] = &domain.Monster{}
	w.Stats[id] = &domain.CombatStats{
		MaxHP: monsterHP, HP: monsterHP,
		Defense: monsterDefense, Power: monsterPower,
	}
	w.Blockers[id] = &domain.BlocksTile{}

	logger.Log.WithFields(logrus.Fields{
		"component": "spawner",
		"entity":    id.String(),
		"name":      w.Names[id].Name,
		"pos":       pos,
	}).Debug("Monster spawned.")

	return id
}
