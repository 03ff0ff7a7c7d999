// Package config provides YAML-based configuration loading for rgballs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Config contains all user-tunable settings.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines simulation parameters.
type GameConfig struct {
	TickRate  int    `yaml:"tick_rate"`  // Frames per second
	LevelsDir string `yaml:"levels_dir"` // Empty means the embedded pack
}

// InputConfig defines how terminal key repeats are turned into held keys.
type InputConfig struct {
	HoldFrames int `yaml:"hold_frames"`
}

// DisplayConfig defines the play screen layout.
type DisplayConfig struct {
	HUD       int `yaml:"hud"`        // Initial HUD mode 0..2
	ViewportW int `yaml:"viewport_w"` // Tiles shown horizontally
	ViewportH int `yaml:"viewport_h"` // Tiles shown vertically
}

// StorageConfig defines where progress is kept.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			HoldFrames: 8,
		},
		Display: DisplayConfig{
			HUD:       1,
			ViewportW: 21,
			ViewportH: 15,
		},
		Storage: StorageConfig{
			DB: "~/.rgballs/rgballs.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.rgballs/rgballs.log",
		},
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("config: game.tick_rate must be positive, got %d", c.Game.TickRate)
	}
	if c.Input.HoldFrames <= 0 {
		return fmt.Errorf("config: input.hold_frames must be positive, got %d", c.Input.HoldFrames)
	}
	if c.Display.HUD < 0 || c.Display.HUD > 2 {
		return fmt.Errorf("config: display.hud must be 0, 1 or 2, got %d", c.Display.HUD)
	}
	if c.Display.ViewportW < 3 || c.Display.ViewportH < 3 {
		return fmt.Errorf("config: viewport must be at least 3x3, got %dx%d",
			c.Display.ViewportW, c.Display.ViewportH)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
