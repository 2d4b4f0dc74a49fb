// Package config provides configuration loading for fieldops.
// Configuration comes from a TOML file with FIELDOPS_* environment
// overrides; invalid values warn and fall back to defaults instead of
// aborting the command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// File permission constants.
const (
	// FileModeDir is the permission for created directories (rwxr-xr-x).
	FileModeDir os.FileMode = 0o755
	// FileModeFile is the permission for data files (rw-r--r--).
	FileModeFile os.FileMode = 0o644
)

// Config holds the resolved fieldops configuration.
type Config struct {
	// DataDir is where the cache database and logs live.
	DataDir string `toml:"data_dir"`

	// DefaultFormat is the list output format: simple, table, or json.
	DefaultFormat string `toml:"default_format"`

	// PageSize caps how many rows list commands print; 0 means no cap.
	PageSize int `toml:"page_size"`

	// Offline routes mutations through the outbox instead of applying
	// them immediately.
	Offline bool `toml:"offline"`

	Log LogConfig `toml:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Enabled  bool   `toml:"enabled"`
	Level    string `toml:"level"`
	MaxFiles int    `toml:"max_files"`
}

var validFormats = map[string]bool{
	"simple": true,
	"table":  true,
	"json":   true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		DefaultFormat: "simple",
		PageSize:      0,
		Offline:       false,
		Log: LogConfig{
			Enabled:  false,
			Level:    "info",
			MaxFiles: 5,
		},
	}
}

// Path returns the config file location, honoring FIELDOPS_CONFIG.
func Path() (string, error) {
	if override := os.Getenv("FIELDOPS_CONFIG"); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(base, "fieldops", "config.toml"), nil
}

// DefaultDataDir returns the default cache location.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve data dir: %w", err)
	}
	return filepath.Join(base, "fieldops"), nil
}

// Load reads the config file (if present), applies environment
// overrides, validates, and returns the resolved configuration.
// A missing file is not an error; defaults apply.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.DataDir == "" {
		dataDir, err := DefaultDataDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = dataDir
	}

	validate(&cfg)
	return cfg, nil
}

// DBPath returns the cache database location under the data dir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "fieldops.db")
}

// LogDir returns the log directory under the data dir.
func (c Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FIELDOPS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FIELDOPS_FORMAT"); v != "" {
		cfg.DefaultFormat = v
	}
	if v := os.Getenv("FIELDOPS_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PageSize = n
		} else {
			warn("FIELDOPS_PAGE_SIZE", v, "must be an integer")
		}
	}
	if v := os.Getenv("FIELDOPS_OFFLINE"); v != "" {
		cfg.Offline = isTruthy(v)
	}
	if v := os.Getenv("FIELDOPS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FIELDOPS_LOG_ENABLED"); v != "" {
		cfg.Log.Enabled = isTruthy(v)
	}
}

// validate normalizes invalid values back to defaults, warning as it
// goes. Bad configuration should never make a list command fail.
func validate(cfg *Config) {
	defaults := Default()

	cfg.DefaultFormat = strings.ToLower(cfg.DefaultFormat)
	if !validFormats[cfg.DefaultFormat] {
		warn("default_format", cfg.DefaultFormat, "must be one of: simple, table, json")
		cfg.DefaultFormat = defaults.DefaultFormat
	}

	if cfg.PageSize < 0 {
		warn("page_size", strconv.Itoa(cfg.PageSize), "must be >= 0")
		cfg.PageSize = defaults.PageSize
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if !validLogLevels[cfg.Log.Level] {
		warn("log.level", cfg.Log.Level, "must be one of: debug, info, warn, error")
		cfg.Log.Level = defaults.Log.Level
	}

	if cfg.Log.MaxFiles <= 0 {
		warn("log.max_files", strconv.Itoa(cfg.Log.MaxFiles), "must be a positive integer")
		cfg.Log.MaxFiles = defaults.Log.MaxFiles
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func warn(key, value, constraint string) {
	fmt.Fprintf(os.Stderr, "fieldops: invalid %s value %q: %s; using default\n", key, value, constraint)
}
