package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config хранит параметры запуска движка и сервера
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	BindAddress string `toml:"bind_address"`
}

type GameConfig struct {
	MapWidth    int `toml:"map_width"`
	MapHeight   int `toml:"map_height"`
	MaxRooms    int `toml:"max_rooms"`
	MinRoomSize int `toml:"min_room_size"`
	MaxRoomSize int `toml:"max_room_size"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" или "text"
}

// DefaultConfig - рабочие значения по умолчанию (классическое поле 80x43)
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			BindAddress: ":8080",
		},
		Game: GameConfig{
			MapWidth:    80,
			MapHeight:   43,
			MaxRooms:    30,
			MinRoomSize: 6,
			MaxRoomSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig читает TOML поверх дефолтов. Пустой путь - чистые дефолты.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Game.MapWidth < 10 || c.Game.MapHeight < 10 {
		return fmt.Errorf("map too small: %dx%d", c.Game.MapWidth, c.Game.MapHeight)
	}
	if c.Game.MinRoomSize < 3 {
		return fmt.Errorf("min_room_size must be at least 3, got %d", c.Game.MinRoomSize)
	}
	if c.Game.MaxRoomSize < c.Game.MinRoomSize {
		return fmt.Errorf("max_room_size %d is below min_room_size %d", c.Game.MaxRoomSize, c.Game.MinRoomSize)
	}
	if c.Game.MaxRooms < 1 {
		return fmt.Errorf("max_rooms must be positive, got %d", c.Game.MaxRooms)
	}
	return nil
}
