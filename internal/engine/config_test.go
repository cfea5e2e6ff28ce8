package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("empty path must not fail: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty path must return pure defaults, got %+v", cfg)
	}
}

func TestLoadConfig_OverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vortex.toml")
	body := `
[server]
bind_address = ":9090"

[game]
map_width = 60
map_height = 40
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("valid config must load: %v", err)
	}
	if cfg.Server.BindAddress != ":9090" {
		t.Errorf("bind_address not applied: %s", cfg.Server.BindAddress)
	}
	if cfg.Game.MapWidth != 60 || cfg.Game.MapHeight != 40 {
		t.Errorf("map size not applied: %dx%d", cfg.Game.MapWidth, cfg.Game.MapHeight)
	}
	// Незатронутые секции остаются дефолтными
	if cfg.Game.MaxRooms != 30 {
		t.Errorf("untouched keys must keep defaults, max_rooms = %d", cfg.Game.MaxRooms)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("untouched sections must keep defaults, level = %s", cfg.Logging.Level)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"tiny map", "[game]\nmap_width = 5\nmap_height = 5\n"},
		{"tiny rooms", "[game]\nmin_room_size = 1\n"},
		{"inverted room sizes", "[game]\nmin_room_size = 8\nmax_room_size = 4\n"},
		{"no rooms", "[game]\nmax_rooms = 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("invalid config must be rejected")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("a missing file must be an error, not silent defaults")
	}
}
