package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Полный "снимок" мира после того, как тик осел: машина состояний снова
// ждет ввода, все эффекты применены, мертвые зачищены.
type ServerResponse struct {
	// Type тип сообщения: "INIT" на подключение, дальше "UPDATE".
	Type string `json:"type"`

	// State текущая фаза машины состояний (для отладки клиента).
	State string `json:"state"`

	// GameOver true, если игрок погиб. Сессия больше не принимает ходов.
	GameOver bool `json:"gameOver,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез исследованных тайлов (туман войны делается на клиенте
	// по флагам IsVisible/IsExplored).
	Map []TileView `json:"map,omitempty"`

	// Entities срез сущностей, видимых игроку прямо сейчас.
	Entities []EntityView `json:"entities,omitempty"`

	// Player снимок героя (он виден всегда, даже мертвый).
	Player *EntityView `json:"player,omitempty"`

	// Logs новые записи журнала с прошлого снапшота.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// IsWall true, если тайл является непроходимым препятствием.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден.
	// Если IsVisible=false, а IsExplored=true, рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats может отсутствовать: статы монстров клиенту не показываем.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// LogEntry представляет одну запись в игровом журнале.
type LogEntry struct {
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, DEATH
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: INIT, MOVE, WAIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DirectionPayload используется для действий, связанных с направлением (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}
