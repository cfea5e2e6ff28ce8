package engine

import (
	"math/rand"

	"vortex-server/internal/domain"
	"vortex-server/internal/spawn"
	"vortex-server/internal/systems"
	"vortex-server/pkg/dungeon"
	"vortex-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Game - одна игровая сессия: мир плюс машина состояний хода.
type Game struct {
	World *domain.World

	// GameOver взводится ровно один раз, на тике смерти игрока.
	// Сущность игрока при этом остается в мире.
	GameOver bool
}

// TickResult - что произошло за один тик
type TickResult struct {
	State domain.RunState
	// PlayerDied поднимается только на том тике, где смерть случилась
	PlayerDied bool
}

// NewGame собирает сессию: карта, игрок в центре первой комнаты,
// по монстру на каждую из остальных комнат.
func NewGame(cfg Config, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))

	m := dungeon.Generate(rng, dungeon.Params{
		Width:       cfg.Game.MapWidth,
		Height:      cfg.Game.MapHeight,
		MaxRooms:    cfg.Game.MaxRooms,
		MinRoomSize: cfg.Game.MinRoomSize,
		MaxRoomSize: cfg.Game.MaxRoomSize,
	})

	w := domain.NewWorld(m, rng)

	// Комната 0 зарезервирована под игрока - это соглашение, а не
	// случайность порядка генерации
	cx, cy := m.Rooms[0].Center()
	spawn.Player(w, domain.Position{X: cx, Y: cy})

	for _, room := range m.Rooms[1:] {
		mx, my := room.Center()
		spawn.RandomMonster(w, domain.Position{X: mx, Y: my})
	}

	w.Log.Append("Добро пожаловать в Vortex.", domain.LogInfo)

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      seed,
		"rooms":     len(m.Rooms),
		"entities":  len(w.Entities()),
	}).Info("Game session created.")

	return &Game{World: w}
}

// RunSystems запускает полный конвейер в фиксированном порядке зависимостей:
// видимость -> AI -> индексация -> ближний бой -> урон -> коммит.
// AI видит свежую видимость, бой видит осевшие позиции обеих сторон,
// урон применяется до того, как кто-либо оценит смерть.
func (g *Game) RunSystems() {
	w := g.World
	systems.ComputeVisibility(w)
	systems.RunMonsterAI(w)
	systems.RebuildMapIndex(w)
	systems.ResolveMelee(w)
	systems.ApplyDamage(w)
	w.Maintain()
}

// Tick продвигает машину состояний на один шаг.
// act читается только в AwaitingInput - единственном состоянии,
// которое не гоняет конвейер (холостые кадры дешевые).
// Зачистка мертвых выполняется безусловно после каждого тика.
func (g *Game) Tick(act Action) TickResult {
	w := g.World

	newState := w.RunState
	switch w.RunState {
	case domain.StatePreRun:
		// Прогреваем видимость и индекс до первого действия игрока
		g.RunSystems()
		newState = domain.StateAwaitingInput

	case domain.StateAwaitingInput:
		if g.handleInput(act) {
			newState = domain.StatePlayerTurn
		}

	case domain.StatePlayerTurn:
		// Ход игрока полностью оседает (видимость + индекс)
		// до того, как монстры начнут решать
		g.RunSystems()
		newState = domain.StateMonsterTurn

	case domain.StateMonsterTurn:
		// Ответ монстров разрешается до возврата управления игроку
		g.RunSystems()
		newState = domain.StateAwaitingInput
	}
	w.RunState = newState

	res := TickResult{State: newState}
	if systems.SweepDead(w) && !g.GameOver {
		g.GameOver = true
		res.PlayerDied = true
		w.Log.Append("Вы погибли...", domain.LogDeath)
		logger.Log.WithField("component", "engine").Info("Player died, session is over.")
	}
	return res
}

// Advance скармливает действие и крутит тики, пока машина снова
// не попросит ввод. Удобная обертка для драйверов (websocket, терминал).
func (g *Game) Advance(act Action) TickResult {
	res := g.Tick(act)
	for g.World.RunState != domain.StateAwaitingInput {
		r := g.Tick(Action{})
		res.State = r.State
		res.PlayerDied = res.PlayerDied || r.PlayerDied
	}
	return res
}
