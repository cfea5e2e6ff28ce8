package systems

import "vortex-server/internal/domain"

// RebuildMapIndex пересобирает индекс занятости карты с нуля:
// Blocked заново заполняется от стен, потом каждая сущность с позицией
// попадает в TileContent своей клетки, а блокирующие тела дополнительно
// помечают клетку непроходимой.
//
// Должна идти после любого движения этого тика и до потребителей
// блокировки. Идемпотентна: повторный запуск на тех же данных
// дает тот же индекс.
func RebuildMapIndex(w *domain.World) {
	m := w.Map
	m.ResetIndex()

	for _, id := range w.Entities() {
		pos, ok := w.Positions[id]
		if !ok {
			continue
		}

		if _, blocks := w.Blockers[id]; blocks {
			m.Blocked[m.Idx(pos.X, pos.Y)] = true
		}
		m.IndexEntity(id, *pos)
	}
}
