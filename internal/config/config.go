// Package config loads pixloop's YAML configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"pixloop/pkg/engine"
	"pixloop/pkg/pixel"
)

const (
	BackendDesktop  = "desktop"
	BackendTerminal = "terminal"
)

type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Backend  string        `yaml:"backend"`
	LogLevel string        `yaml:"log_level"`
	Record   RecordConfig  `yaml:"record"`
	Storage  StorageConfig `yaml:"storage"`
	Palette  []string      `yaml:"palette"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	ScaleX int    `yaml:"scale_x"`
	ScaleY int    `yaml:"scale_y"`
}

type RecordConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Window:   WindowConfig{Title: "pixloop sketch", Width: 160, Height: 120, ScaleX: 4, ScaleY: 4},
		Backend:  BackendDesktop,
		LogLevel: "info",
		Record:   RecordConfig{Compress: true},
		Storage:  StorageConfig{Path: "~/.pixloop/sessions.db"},
	}
}

func (c Config) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("config: window: %w", err)
	}
	switch c.Backend {
	case BackendDesktop, BackendTerminal:
	default:
		return fmt.Errorf("config: unknown backend %q (want %s or %s)", c.Backend, BackendDesktop, BackendTerminal)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

func (c Config) Engine() engine.Config {
	return engine.Config{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		ScaleX: c.Window.ScaleX,
		ScaleY: c.Window.ScaleY,
	}
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Colors parses the palette entries.
func (c Config) Colors() ([]pixel.Color, error) {
	out := make([]pixel.Color, 0, len(c.Palette))
	for i, s := range c.Palette {
		col, err := pixel.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("config: palette[%d]: %w", i, err)
		}
		out = append(out, col)
	}
	return out, nil
}
