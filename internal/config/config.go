// Package config loads settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults.
const (
	DefaultTheme      = "classic"
	DefaultLogLevel   = "info"
	DefaultCharLimit  = 200
	DefaultExportPath = "todos.json"
)

// Config holds user settings. None of it is task data.
type Config struct {
	Theme      string `toml:"theme"`
	Group      bool   `toml:"group"`
	LogLevel   string `toml:"log_level"`
	LogFile    string `toml:"log_file"`
	AltScreen  bool   `toml:"alt_screen"`
	CharLimit  int    `toml:"char_limit"`
	ExportPath string `toml:"export_path"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:      DefaultTheme,
		LogLevel:   DefaultLogLevel,
		AltScreen:  true,
		CharLimit:  DefaultCharLimit,
		ExportPath: DefaultExportPath,
	}
}

// Path resolves the config file location: $TODO_CONFIG, then
// $XDG_CONFIG_HOME/todo/config.toml, then ~/.config/todo/config.toml.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv("TODO_CONFIG")); p != "" {
		return p, nil
	}
	if x := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); x != "" {
		return filepath.Join(x, "todo", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".config", "todo", "config.toml"), nil
}

// Load reads path (resolved with Path when empty) over the defaults and then
// applies environment overrides. A missing file is not an error. The result is
// not validated; callers apply their own overrides first and then Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("TODO_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_EXPORT_PATH")); v != "" {
		cfg.ExportPath = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_GROUP")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TODO_GROUP: %w", err)
		}
		cfg.Group = b
	}
	return nil
}

// Validate rejects settings the UI cannot honor.
func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unknown %q (want classic, neon or mono)", c.Theme)
	}
	if c.CharLimit <= 0 {
		return fmt.Errorf("char_limit: must be positive, got %d", c.CharLimit)
	}
	if strings.TrimSpace(c.ExportPath) == "" {
		return errors.New("export_path: empty")
	}
	return nil
}
