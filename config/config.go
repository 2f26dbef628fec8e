// Package config reads the settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SvenDH/hearthchess/game"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	ShowDebug  bool `yaml:"show_debug"`
}

type Rules struct {
	WhiteHealth     int `yaml:"white_health"`
	BlackHealth     int `yaml:"black_health"`
	OpeningHand     int `yaml:"opening_hand"`
	SecondHand      int `yaml:"second_hand"`
	HeroPowerCost   int `yaml:"hero_power_cost"`
	HeroPowerDamage int `yaml:"hero_power_damage"`
}

type Timing struct {
	Mulligan time.Duration `yaml:"mulligan"`
	Anim     time.Duration `yaml:"anim"`
	Bot      time.Duration `yaml:"bot"`
}

type Config struct {
	LogLevel string `yaml:"log_level"`
	// Assets is the directory holding img/*.png. Empty means generated art.
	Assets  string `yaml:"assets"`
	Decks   string `yaml:"decks"`
	History string `yaml:"history"`
	Window  Window `yaml:"window"`
	Rules   Rules  `yaml:"rules"`
	Timing  Timing `yaml:"timing"`
}

func Default() Config {
	g := game.DefaultConfig()
	return Config{
		LogLevel: "info",
		History:  "hearthchess.db",
		Window:   Window{Width: 1024, Height: 768},
		Rules: Rules{
			WhiteHealth:     g.WhiteHealth,
			BlackHealth:     g.BlackHealth,
			OpeningHand:     g.OpeningHand,
			SecondHand:      g.SecondHand,
			HeroPowerCost:   g.HeroPowerCost,
			HeroPowerDamage: g.HeroPowerDamage,
		},
		Timing: Timing{
			Mulligan: g.MulliganDuration,
			Anim:     g.AnimDuration,
			Bot:      g.BotDelay,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	r := c.Rules
	switch {
	case r.WhiteHealth <= 0 || r.BlackHealth <= 0:
		return fmt.Errorf("%w: health must be positive", ErrInvalid)
	case r.OpeningHand < 0 || r.OpeningHand > game.MaxHand || r.SecondHand < 0 || r.SecondHand >= game.MaxHand:
		return fmt.Errorf("%w: opening hands must fit in a hand of %d", ErrInvalid, game.MaxHand)
	case r.HeroPowerCost < 0 || r.HeroPowerCost > game.MaxMana:
		return fmt.Errorf("%w: hero power cost must be between 0 and %d", ErrInvalid, game.MaxMana)
	case r.HeroPowerDamage < 0:
		return fmt.Errorf("%w: hero power damage must not be negative", ErrInvalid)
	case c.Timing.Mulligan <= 0 || c.Timing.Anim <= 0 || c.Timing.Bot < 0:
		return fmt.Errorf("%w: durations must be positive", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	return nil
}

// Game converts the rules and timings for the engine.
func (c Config) Game() game.Config {
	return game.Config{
		WhiteHealth:      c.Rules.WhiteHealth,
		BlackHealth:      c.Rules.BlackHealth,
		OpeningHand:      c.Rules.OpeningHand,
		SecondHand:       c.Rules.SecondHand,
		HeroPowerCost:    c.Rules.HeroPowerCost,
		HeroPowerDamage:  c.Rules.HeroPowerDamage,
		MulliganDuration: c.Timing.Mulligan,
		AnimDuration:     c.Timing.Anim,
		BotDelay:         c.Timing.Bot,
	}
}
