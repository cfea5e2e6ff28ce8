package systems

import (
	"vortex-server/internal/domain"
	"vortex-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RunMonsterAI решает, что делать каждому монстру.
// Работает строго после системы видимости (наборы клеток этого же прохода)
// и до индексации: сама она чужие позиции не читает и не пишет.
//
// Монстры решают ровно один раз за ход игрока - в фазе MonsterTurn.
// В остальных проходах конвейера (PreRun, PlayerTurn) система холостая:
// иначе сосед бил бы игрока до первого ввода и дважды за его действие.
//
// Контракт простой: игрок в наборе видимых клеток И в соседней клетке ->
// вешаем намерение атаки. Иначе монстр стоит. Преследование игрока
// по последней известной позиции сюда пока не входит.
func RunMonsterAI(w *domain.World) {
	if w.RunState != domain.StateMonsterTurn {
		return
	}

	playerIdx := w.Map.Idx(w.PlayerPos.X, w.PlayerPos.Y)

	for _, id := range w.Entities() {
		if _, isMonster := w.Monsters[id]; !isMonster {
			continue
		}
		view, ok := w.Views[id]
		if !ok {
			continue
		}
		pos, ok := w.Positions[id]
		if !ok {
			continue
		}

		// Не видит игрока - стоит на месте
		if !view.VisibleTiles[playerIdx] {
			continue
		}

		// Видит, но не дотягивается - тоже стоит (пока без погони)
		if !pos.IsAdjacent(w.PlayerPos) {
			continue
		}

		// Цель намерения - всегда игрок: по себе и по сородичам не бьем
		w.MeleeIntents[id] = &domain.WantsToMelee{Target: w.Player}

		logger.Log.WithFields(logrus.Fields{
			"component": "monster_ai",
			"monster":   w.NameOf(id),
			"pos":       *pos,
		}).Debug("Monster queued melee intent against player.")
	}
}
