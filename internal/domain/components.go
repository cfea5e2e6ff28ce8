package domain

// --- КОМПОНЕНТЫ ---
// Каждый компонент живет в своем разреженном хранилище на World.
// Отсутствие записи в хранилище == у сущности нет этого свойства.

// Renderable - Визуализация (Клиент)
type Renderable struct {
	Glyph rune   `json:"glyph"` // Символ отображения (g-гоблин, @-игрок)
	Color string `json:"color"`
}

// Name - Отображаемое имя для логов и осмотра
type Name struct {
	Name string `json:"name"`
}

// Monster - маркер автономного врага (пустой компонент-тег)
type Monster struct{}

// BlocksTile - маркер "тело занимает клетку": другая блокирующая
// сущность не может встать на ту же позицию
type BlocksTile struct{}

// FieldOfView - зрение сущности
type FieldOfView struct {
	Radius int `json:"radius"`

	// VisibleTiles - индексы клеток, видимых на текущем проходе.
	// Полностью перезаписывается системой видимости, кэша нет.
	VisibleTiles map[int]bool `json:"-"`
}

// CombatStats - Характеристики и Ресурсы
type CombatStats struct {
	MaxHP   int `json:"maxHp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// WantsToMelee - намерение атаковать (транзитный компонент).
// Вешается на атакующего, снимается боевой системой в том же проходе.
type WantsToMelee struct {
	Target EntityID `json:"target"`
}

// SufferDamage - накопитель входящего урона (транзитный компонент).
// Несколько ударов за проход складываются в Amounts, система урона
// применяет сумму и снимает компонент целиком.
type SufferDamage struct {
	Amounts []int `json:"amounts"`
}
