package systems

import (
	"vortex-server/internal/domain"
	"vortex-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibility пересчитывает зрение всем обладателям FieldOfView.
// Набор видимых клеток перезаписывается целиком, без переноса с прошлого
// прохода. Для игрока дополнительно: открытые клетки уходят в Map.Revealed
// (навсегда), текущие - в Map.Visible, и обновляется кэш PlayerPos.
// Идет первой в конвейере: AI потребляет наборы именно этого прохода.
func ComputeVisibility(w *domain.World) {
	for _, id := range w.Entities() {
		view, ok := w.Views[id]
		if !ok {
			continue
		}
		pos, ok := w.Positions[id]
		if !ok {
			continue
		}

		view.VisibleTiles = fieldOfView(w.Map, *pos, view.Radius)

		if id == w.Player {
			w.Map.ClearVisible()
			for idx := range view.VisibleTiles {
				w.Map.Revealed[idx] = true
				w.Map.Visible[idx] = true
			}
			w.PlayerPos = *pos

			logger.Log.WithFields(logrus.Fields{
				"component":     "visibility_system",
				"observer_pos":  *pos,
				"visible_tiles": len(view.VisibleTiles),
			}).Debug("Player FOV recomputed.")
		}
	}
}

// fieldOfView возвращает мапу индексов {index: true}, которые видны
// из pos в радиусе radius (рекурсивный Shadowcasting).
func fieldOfView(m *domain.Map, pos domain.Position, radius int) map[int]bool {
	visibleMap := make(map[int]bool)
	if radius <= 0 {
		return visibleMap // Слепой
	}

	// Центр всегда виден
	visibleMap[m.Idx(pos.X, pos.Y)] = true

	// Запускаем рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(m, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visibleMap)
	}

	return visibleMap
}

func castLight(m *domain.Map, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			// Проверка границ и радиуса
			if m.InBounds(x, y) {
				if float64(dx*dx+dy*dy) < radiusSq {
					visibleMap[m.Idx(x, y)] = true
				}
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if m.IsOpaque(x, y) {
					newStart = rSlope
					continue
				} else {
					// Стена кончилась, началась пустота
					blocked = false
					start = newStart
				}
			} else {
				// Мы шли по пустоте и наткнулись на стену
				if m.IsOpaque(x, y) && j < radius {
					blocked = true
					// Рекурсивно запускаем сканирование следующего ряда
					castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}
