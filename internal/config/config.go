// Package config loads the console's boot options from a TOML file,
// following the teacher devkit's load/default/validate shape but
// persisting through github.com/BurntSushi/toml instead of JSON.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"retrobasic/internal/debug"
	"retrobasic/internal/screenmode"
)

// Config holds every boot option a host can source from a file or
// override from the command line: display scale, initial screen mode,
// scheduler speed factor, log level, and optional ROM/source/font
// paths.
type Config struct {
	ScreenMode   int     `toml:"screen_mode"`
	Scale        int     `toml:"scale"`
	SpeedFactor  float64 `toml:"speed_factor"`
	LogLevel     string  `toml:"log_level"`
	SourcePath   string  `toml:"source_path"`
	FontPath8x8  string  `toml:"font_path_8x8"`
	FontPath8x16 string  `toml:"font_path_8x16"`
	DoubleBuffer bool    `toml:"double_buffer"`
}

// Default returns the boot configuration a console starts with when no
// file is present: SCREEN 0 (40x25 text), 3x scale, real-time speed,
// and Info-level logging.
func Default() Config {
	return Config{
		ScreenMode:  0,
		Scale:       3,
		SpeedFactor: 1.0,
		LogLevel:    "info",
	}
}

// Load reads a TOML config file at path, falling back to Default (not
// an error) when the file does not exist, matching the teacher devkit
// settings loader's missing-file behavior. Any value present in the
// file overrides the corresponding Default field; the result is always
// run through Validate, which repairs out-of-range entries in place
// rather than failing outright.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.Validate()
	return cfg, nil
}

// Save writes cfg to path as TOML, creating or truncating the file.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Validate clamps or replaces any field outside its valid range,
// mirroring the teacher devkit settings loader's silent-repair
// approach rather than rejecting the whole file over one bad field.
func (c *Config) Validate() {
	if _, err := screenmode.Lookup(c.ScreenMode); err != nil {
		c.ScreenMode = 0
	}
	if c.Scale < 1 || c.Scale > 6 {
		c.Scale = 3
	}
	if c.SpeedFactor <= 0 {
		c.SpeedFactor = 1.0
	}
	if _, ok := logLevelByName[c.LogLevel]; !ok {
		c.LogLevel = "info"
	}
}

var logLevelByName = map[string]debug.LogLevel{
	"none":    debug.LogLevelNone,
	"error":   debug.LogLevelError,
	"warning": debug.LogLevelWarning,
	"info":    debug.LogLevelInfo,
	"debug":   debug.LogLevelDebug,
	"trace":   debug.LogLevelTrace,
}

// ResolvedLogLevel returns c.LogLevel as a debug.LogLevel, defaulting
// to Info for any value Validate would have already repaired.
func (c Config) ResolvedLogLevel() debug.LogLevel {
	if level, ok := logLevelByName[c.LogLevel]; ok {
		return level
	}
	return debug.LogLevelInfo
}
