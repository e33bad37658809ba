// Package config loads optional program settings from a TOML file:
// the interactive prompt, the input-history location, and per-category
// display routes. The zero Config is usable; a missing file is not an
// error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/console-tools/console/display"
)

// Config holds the settings a host program may override on disk.
type Config struct {
	Console ConsoleConfig `toml:"console"`
	Display DisplayConfig `toml:"display"`
}

// ConsoleConfig controls the interactive loop.
type ConsoleConfig struct {
	// Prompt is printed before each line read. Defaults to "> ".
	Prompt string `toml:"prompt"`
	// HistoryFile is where input history is persisted. Empty disables
	// persistence.
	HistoryFile string `toml:"history_file"`
}

// DisplayConfig maps message categories to routes. Each value is one of
// "ignore", "stdout", "log", "stdout+log".
type DisplayConfig struct {
	Debug   string `toml:"debug"`
	Info    string `toml:"info"`
	Warning string `toml:"warning"`
	Error   string `toml:"error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Console: ConsoleConfig{
			Prompt: "> ",
		},
		Display: DisplayConfig{
			Debug:   display.RouteIgnore.String(),
			Info:    display.RouteStdout.String(),
			Warning: display.RouteStdout.String(),
			Error:   display.RouteStdout.String(),
		},
	}
}

// Load reads the config file at path, layering it over Default. A
// missing file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Console.Prompt == "" {
		cfg.Console.Prompt = "> "
	}

	return cfg, nil
}

// Routes converts the display section to route settings keyed by
// category. Unrecognized route strings fall back to "ignore".
func (c Config) Routes() map[display.Category]display.Route {
	return map[display.Category]display.Route{
		display.Debug:   display.ParseRoute(c.Display.Debug),
		display.Info:    display.ParseRoute(c.Display.Info),
		display.Warning: display.ParseRoute(c.Display.Warning),
		display.Error:   display.ParseRoute(c.Display.Error),
	}
}
