package engine

import (
	"vortex-server/internal/domain"
)

// ActionType - действие, пришедшее от коллаборатора ввода
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionMove
	ActionWait
)

// Action - одно дискретное действие игрока
type Action struct {
	Type   ActionType
	Dx, Dy int
}

// handleInput применяет действие игрока. Возвращает true, если ход
// потрачен (и машина должна перейти в PlayerTurn). Недопустимая цель
// движения игнорируется молча: ход не тратится, состояние не меняется.
func (g *Game) handleInput(act Action) bool {
	if g.GameOver {
		return false // мертвые не ходят
	}

	switch act.Type {
	case ActionMove:
		return g.tryMovePlayer(act.Dx, act.Dy)
	case ActionWait:
		return true
	}
	return false
}

// tryMovePlayer двигает игрока либо конвертирует шаг в атаку.
// Шаг в клетку с телом (сущность с CombatStats в индексе занятости)
// вешает на игрока WantsToMelee против жильца - без движения.
func (g *Game) tryMovePlayer(dx, dy int) bool {
	w := g.World

	pos, ok := w.Positions[w.Player]
	if !ok {
		return false
	}
	if dx == 0 && dy == 0 {
		return false
	}

	target := pos.Shift(dx, dy)
	if !w.Map.InBounds(target.X, target.Y) {
		return false // край мира
	}
	idx := w.Map.Idx(target.X, target.Y)

	for _, other := range w.Map.TileContent[idx] {
		if other == w.Player {
			continue
		}
		if _, hasStats := w.Stats[other]; !hasStats {
			continue // предметы и декорации проходимы
		}
		w.MeleeIntents[w.Player] = &domain.WantsToMelee{Target: other}
		return true
	}

	if w.Map.Blocked[idx] {
		return false // путь прегражден
	}

	pos.X, pos.Y = target.X, target.Y
	w.PlayerPos = *pos
	return true
}
