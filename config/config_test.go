package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SvenDH/hearthchess/game"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hearthchess.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultMatchesEngine(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Game() != game.DefaultConfig() {
		t.Fatalf("expected engine defaults, got %+v", cfg.Game())
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
log_level: debug
assets: ./art
rules:
  black_health: 25
timing:
  mulligan: 2s
  bot: 250ms
window:
  fullscreen: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Assets != "./art" {
		t.Fatalf("unexpected top level %+v", cfg)
	}
	if cfg.Rules.BlackHealth != 25 || cfg.Rules.WhiteHealth != 20 {
		t.Fatalf("unexpected rules %+v", cfg.Rules)
	}
	if cfg.Timing.Mulligan != 2*time.Second || cfg.Timing.Bot != 250*time.Millisecond || cfg.Timing.Anim != 500*time.Millisecond {
		t.Fatalf("unexpected timing %+v", cfg.Timing)
	}
	if !cfg.Window.Fullscreen || cfg.Window.Width != 1024 {
		t.Fatalf("unexpected window %+v", cfg.Window)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"health":   "rules: {white_health: 0}",
		"hand":     "rules: {second_hand: 10}",
		"power":    "rules: {hero_power_cost: 11}",
		"duration": "timing: {anim: 0s}",
	}
	for name, data := range cases {
		if _, err := Load(writeFile(t, data)); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
	if _, err := Load(writeFile(t, "rules: [")); err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}
