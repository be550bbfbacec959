package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadConfig loads the configuration and applies the logging flags.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	applyFlags(&cfg, flagLogLevel, flagLogFile)
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// applyFlags overrides config values with non-empty flag values.
func applyFlags(cfg *config.Config, level, file string) {
	if level != "" {
		cfg.Log.Level = level
	}
	if file != "" {
		cfg.Log.File = file
	}
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, cfg config.Config) (*log.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}), nil
}

// openLogFile opens the configured log file for appending. Without a file
// logs are discarded, since the game owns the terminal.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// spriteSources returns the sprite file systems in search order: the
// configured directory, then the embedded sprites.
func spriteSources(cfg config.Config) []fs.FS {
	var sources []fs.FS
	if cfg.Sprites.Dir != "" {
		sources = append(sources, os.DirFS(cfg.Sprites.Dir))
	}
	return append(sources, assets.Embedded())
}
