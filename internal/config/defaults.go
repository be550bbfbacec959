package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration. It matches
// defaults/snake.yaml and is used when no file can be read.
func Default() Config {
	return Config{
		Title:       "Jake the Snake",
		WindowTitle: "Retro Snake",
		Theme: Theme{
			Field: "#ADCC60",
			Ink:   "#2B3318",
		},
		Sprites: Sprites{
			Food: "graphics/food.yaml",
		},
		Keys: Keys{
			Up:         []string{"up", "w", "k"},
			Down:       []string{"down", "s", "j"},
			Left:       []string{"left", "a", "h"},
			Right:      []string{"right", "d", "l"},
			Quit:       []string{"q", "ctrl+c"},
			Screenshot: []string{"ctrl+s"},
			Help:       []string{"?"},
		},
		Log: Log{
			Level: "info",
		},
		Screenshots: Screenshots{
			Dir: "screenshots",
		},
	}
}
