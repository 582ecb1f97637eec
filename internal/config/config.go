package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/dnd"
	"github.com/revolutionary-ui/revui/internal/export"
)

// Config holds all project configuration loaded from .revui/config.yaml.
type Config struct {
	Canvas   string           `yaml:"canvas"`    // canvas the CLI edits by default
	Database string           `yaml:"database"`  // relative to the project root
	LogLevel string           `yaml:"log_level"` // "debug", "info", "warn", "error"
	Theme    string           `yaml:"theme"`     // terminal color theme
	Export   export.Options   `yaml:"export"`
	Builder  builder.Settings `yaml:"builder"`
	Drag     DragConfig       `yaml:"drag"`
	Watch    WatchConfig      `yaml:"watch"`
}

// DragConfig tunes drop-zone resolution.
type DragConfig struct {
	Proximity   float64 `yaml:"proximity"`    // px; a zone farther than this never wins
	CanvasWidth float64 `yaml:"canvas_width"` // px; width used for estimated layout
}

// WatchConfig tunes `export --watch`.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Dir is the project-local configuration directory.
const Dir = ".revui"

// configFileName is the configuration file path relative to the project root.
const configFileName = Dir + "/config.yaml"

// Environment overrides.
const (
	EnvLogLevel = "REVUI_LOG_LEVEL"
	EnvCanvas   = "REVUI_CANVAS"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Canvas:   "main",
		Database: Dir + "/canvas.db",
		LogLevel: "warn",
		Theme:    "default",
		Export:   export.DefaultOptions(),
		Builder:  builder.DefaultSettings(),
		Drag: DragConfig{
			Proximity:   dnd.DefaultProximity,
			CanvasWidth: 1200,
		},
		Watch: WatchConfig{Debounce: 200 * time.Millisecond},
	}
}

// Load reads the project configuration from .revui/config.yaml in the given
// project directory. A missing file yields Default(); keys absent from the
// file keep their default values. Environment variables override the file.
func Load(projectDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(projectDir, configFileName)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvCanvas); v != "" {
		cfg.Canvas = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configFileName, err)
	}
	return cfg, nil
}

// Save writes the config to .revui/config.yaml, creating the directory if
// needed.
func Save(projectDir string, cfg *Config) error {
	dir := filepath.Join(projectDir, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", Dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	path := filepath.Join(projectDir, configFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}
	return nil
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Canvas) == "" {
		return fmt.Errorf("canvas name is empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Export.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if c.Drag.Proximity < 0 {
		return fmt.Errorf("drag.proximity must not be negative")
	}
	return nil
}

// DatabasePath resolves the database location against projectDir.
func (c *Config) DatabasePath(projectDir string) string {
	if filepath.IsAbs(c.Database) {
		return c.Database
	}
	return filepath.Join(projectDir, c.Database)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q. Supported: debug, info, warn, error", name)
	}
	return l, nil
}

// Level returns the configured slog level, falling back to warn.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}
