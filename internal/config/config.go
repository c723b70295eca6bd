// Package config loads the settings shared by the keyword commands from a
// YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read from the working directory
// when no file is given explicitly.
const DefaultFile = "reservedwords.yml"

// Config holds the settings of a keyword command.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig locates and tunes the keyword database.
type DatabaseConfig struct {
	// Path is the SQLite database file. It is created when missing.
	Path string `yaml:"path"`

	// BusyTimeout is how long a statement waits for a lock held by another
	// connection.
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// JournalMode is the SQLite journal mode, e.g. "wal" or "delete".
	JournalMode string `yaml:"journal_mode"`
}

// LogConfig selects the level and format of log output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // auto, text or json
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        "fb_reservedwords.db",
			BusyTimeout: 5 * time.Second,
			JournalMode: "wal",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// LoadConfig reads the configuration file at path. Settings missing from the
// file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path when it is set. Otherwise it loads DefaultFile from the
// working directory if that file exists, and falls back to Default.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	cfg, err := LoadConfig(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path is empty")
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout %v is negative", c.Database.BusyTimeout)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	return nil
}
