// Package config provides YAML-based configuration loading for the snake
// game: window and heading titles, colors, key bindings, sprite paths and
// logging. Grid size and tick rate are fixed by the game and not
// configurable.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration for the snake game.
type Config struct {
	Title       string      `yaml:"title"`
	WindowTitle string      `yaml:"window_title"`
	Theme       Theme       `yaml:"theme"`
	Sprites     Sprites     `yaml:"sprites"`
	Keys        Keys        `yaml:"keys"`
	Log         Log         `yaml:"log"`
	Screenshots Screenshots `yaml:"screenshots"`
}

// Theme defines the hex colors of the board.
type Theme struct {
	Field string `yaml:"field"` // Background of the play field
	Ink   string `yaml:"ink"`   // Snake, border and text
	Food  string `yaml:"food"`  // Overrides the sprite color when set
}

// Sprites defines where textures are loaded from.
type Sprites struct {
	Dir  string `yaml:"dir"` // Optional directory searched before the embedded sprites
	Food string `yaml:"food"`
}

// Keys maps each action to the keys that trigger it.
type Keys struct {
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Quit       []string `yaml:"quit"`
	Screenshot []string `yaml:"screenshot"`
	Help       []string `yaml:"help"`
}

// Log defines logging parameters.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs during local play
}

// Screenshots defines where ctrl+s captures are written.
type Screenshots struct {
	Dir string `yaml:"dir"`
}

// validHex reports whether s is a #rgb or #rrggbb color.
func validHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	for name, v := range map[string]string{
		"theme.field": c.Theme.Field,
		"theme.ink":   c.Theme.Ink,
	} {
		if !validHex(v) {
			return fmt.Errorf("config: %s: invalid color %q", name, v)
		}
	}
	if c.Theme.Food != "" && !validHex(c.Theme.Food) {
		return fmt.Errorf("config: theme.food: invalid color %q", c.Theme.Food)
	}

	if c.Sprites.Food == "" {
		return fmt.Errorf("config: sprites.food must not be empty")
	}

	for name, keys := range map[string][]string{
		"up":    c.Keys.Up,
		"down":  c.Keys.Down,
		"left":  c.Keys.Left,
		"right": c.Keys.Right,
		"quit":  c.Keys.Quit,
	} {
		if len(keys) == 0 {
			return fmt.Errorf("config: keys.%s must have at least one key", name)
		}
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
