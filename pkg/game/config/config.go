// Package config loads game settings from a YAML file and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"minesweeper/pkg/engine/field"
)

// DefaultPath is where the config file is looked up when -config is not given
const DefaultPath = "./minesweeper.yaml"

// Config holds the settings for one game session
type Config struct {
	Rows    int   `yaml:"rows"`
	Columns int   `yaml:"columns"`
	Mines   int   `yaml:"mines"`
	Seed    int64 `yaml:"seed"` // 0 means seed from the clock

	Locale     string `yaml:"locale"`
	LocalesDir string `yaml:"localesDir"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr
}

// Default returns the settings used when neither file nor flags say otherwise
func Default() Config {
	return Config{
		Rows:       field.DefaultRows,
		Columns:    field.DefaultColumns,
		Mines:      field.DefaultMines,
		Locale:     "en_GB",
		LocalesDir: "locales",
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for keys the file set to their zero value
func (c *Config) fillDefaults() {
	def := Default()
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.LocalesDir == "" {
		c.LocalesDir = def.LocalesDir
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate rejects settings the grid would otherwise silently repair
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Columns)
	}
	if c.Mines < 0 {
		return fmt.Errorf("mines must not be negative, got %d", c.Mines)
	}
	if c.Mines > c.Rows*c.Columns {
		return fmt.Errorf("%d mines do not fit in a %dx%d grid", c.Mines, c.Rows, c.Columns)
	}
	return nil
}

// FromArgs parses command-line flags, loads the file named by -config and
// applies any flags that were given explicitly on top of it
func FromArgs(args []string) (Config, error) {
	flags := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	path := flags.String("config", DefaultPath, "path to config file")
	rows := flags.Int("rows", 0, "number of rows")
	cols := flags.Int("cols", 0, "number of columns")
	mines := flags.Int("mines", 0, "number of mines")
	seed := flags.Int64("seed", 0, "random seed (0 seeds from the clock)")
	locale := flags.String("locale", "", "message catalog language, e.g. en_GB")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn, error")
	logFile := flags.String("log-file", "", "write logs to this file instead of stderr")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return cfg, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Columns = *cols
		case "mines":
			cfg.Mines = *mines
		case "seed":
			cfg.Seed = *seed
		case "locale":
			cfg.Locale = *locale
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-file":
			cfg.Log.File = *logFile
		}
	})

	return cfg, cfg.Validate()
}
