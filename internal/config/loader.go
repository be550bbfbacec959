package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LocalPath is the project-relative config file.
const LocalPath = "configs/snake.yaml"

// Load loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default -> Default()
func Load(customPath string) (Config, string, error) {
	return LoadFrom(customPath, SearchPaths())
}

// LoadFrom is Load with an explicit list of optional candidate files.
// Candidates that are missing or invalid are skipped; a custom path that
// cannot be used is an error.
func LoadFrom(customPath string, candidates []string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Default(), "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultSnakeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil
}

// SearchPaths returns the optional config files in search order.
func SearchPaths() []string {
	return []string{userConfigPath(), LocalPath}
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over Default, so omitted settings keep their
// default values.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}
