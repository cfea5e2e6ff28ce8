// Package dungeon генерирует уровни "комнаты и коридоры".
package dungeon

import (
	"math/rand"

	"vortex-server/internal/domain"
)

// Params - настройки генерации одного уровня
type Params struct {
	Width, Height int
	MaxRooms      int
	MinRoomSize   int
	MaxRoomSize   int
}

// Generate создает новый уровень: сплошная стена, в ней до MaxRooms
// случайных непересекающихся комнат, соседние комнаты соединены
// Г-образными коридорами. Список комнат упорядочен: комната 0 -
// место спавна игрока по соглашению.
func Generate(rng *rand.Rand, p Params) *domain.Map {
	m := domain.NewMap(p.Width, p.Height)

	for i := 0; i < p.MaxRooms; i++ {
		w := randRange(rng, p.MinRoomSize, p.MaxRoomSize)
		h := randRange(rng, p.MinRoomSize, p.MaxRoomSize)
		x := randRange(rng, 1, p.Width-w-1)
		y := randRange(rng, 1, p.Height-h-1)

		newRoom := domain.Rect{X: x, Y: y, W: w, H: h}
		failed := false

		for _, other := range m.Rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}

		if !failed {
			carveRoom(m, newRoom)

			if len(m.Rooms) > 0 {
				// Соединяем с предыдущей комнатой
				prevX, prevY := m.Rooms[len(m.Rooms)-1].Center()
				currX, currY := newRoom.Center()

				if rng.Intn(2) == 0 {
					carveHCorridor(m, prevX, currX, prevY)
					carveVCorridor(m, prevY, currY, currX)
				} else {
					carveVCorridor(m, prevY, currY, prevX)
					carveHCorridor(m, prevX, currX, currY)
				}
			}
			m.Rooms = append(m.Rooms, newRoom)
		}
	}

	// Гарантия контракта: список комнат не бывает пустым.
	// Если рандом совсем не задался, вырезаем комнату в центре.
	if len(m.Rooms) == 0 {
		fallback := domain.Rect{
			X: p.Width/2 - p.MinRoomSize/2,
			Y: p.Height/2 - p.MinRoomSize/2,
			W: p.MinRoomSize,
			H: p.MinRoomSize,
		}
		carveRoom(m, fallback)
		m.Rooms = append(m.Rooms, fallback)
	}

	return m
}

// --- Вспомогательные функции ---

func carveRoom(m *domain.Map, room domain.Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			m.Tiles[m.Idx(x, y)] = domain.TileFloor
		}
	}
}

func carveHCorridor(m *domain.Map, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		m.Tiles[m.Idx(x, y)] = domain.TileFloor
	}
}

func carveVCorridor(m *domain.Map, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		m.Tiles[m.Idx(x, y)] = domain.TileFloor
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
