package domain

import "fmt"

// TileType - классификация клетки. Пол проходим и прозрачен,
// стена непроходима и непрозрачна.
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Map - геометрия подземелья плюс производные индексы.
// Все плоские слайсы имеют длину Width*Height и адресуются как y*Width+x,
// размер фиксирован на всю сессию.
type Map struct {
	Tiles  []TileType `json:"tiles"`
	Width  int        `json:"width"`
	Height int        `json:"height"`

	// Rooms - упорядоченный список комнат. Комната с индексом 0
	// по соглашению зарезервирована под спавн игрока.
	Rooms []Rect `json:"-"`

	// Revealed - туман войны: однажды открытая клетка открыта навсегда
	Revealed []bool `json:"revealed"`
	// Visible - клетки, видимые игроку прямо сейчас.
	// Полностью перезаписывается каждым проходом системы видимости.
	Visible []bool `json:"visible"`

	// Blocked - непроходимость клетки (стены + блокирующие тела).
	// Пересобирается системой индексации после каждого движения.
	Blocked []bool `json:"-"`

	// TileContent: Индекс позиции -> Список сущностей в клетке.
	// json:"-" означает, что мы НЕ отправляем этот индекс клиенту (экономия трафика)
	TileContent [][]EntityID `json:"-"`
}

// NewMap создает карту, целиком заполненную стенами
func NewMap(width, height int) *Map {
	size := width * height
	m := &Map{
		Tiles:       make([]TileType, size),
		Width:       width,
		Height:      height,
		Revealed:    make([]bool, size),
		Visible:     make([]bool, size),
		Blocked:     make([]bool, size),
		TileContent: make([][]EntityID, size),
	}
	return m
}

// Idx переводит координаты в индекс плоского слайса.
// Выход за границы - это баг движения или генерации, а не условие времени
// выполнения, поэтому падаем громко вместо молчаливого клампа.
func (m *Map) Idx(x, y int) int {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		panic(fmt.Sprintf("map index out of bounds: (%d,%d) on %dx%d", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// XY - обратное преобразование индекса в координаты
func (m *Map) XY(idx int) (int, int) {
	if idx < 0 || idx >= len(m.Tiles) {
		panic(fmt.Sprintf("map index out of bounds: %d on %dx%d", idx, m.Width, m.Height))
	}
	return idx % m.Width, idx / m.Width
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsOpaque проверяет, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[m.Idx(x, y)] == TileWall
}

// ClearVisible сбрасывает текущую видимость перед пересчетом.
// Revealed не трогаем никогда: открытое остается открытым.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// ResetIndex очищает индекс занятости: Blocked заполняется от стен,
// списки сущностей по клеткам опустошаются
func (m *Map) ResetIndex() {
	for i := range m.Tiles {
		m.Blocked[i] = m.Tiles[i] == TileWall
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// IndexEntity добавляет сущность в индекс занятости её клетки
func (m *Map) IndexEntity(id EntityID, pos Position) {
	idx := m.Idx(pos.X, pos.Y)
	m.TileContent[idx] = append(m.TileContent[idx], id)
}

// EntitiesAt возвращает список сущностей в конкретной клетке (быстро!)
func (m *Map) EntitiesAt(x, y int) []EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.TileContent[m.Idx(x, y)]
}
