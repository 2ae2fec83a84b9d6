// Package config loads poetic settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the config file read when POETIC_CONFIG is unset.
const DefaultPath = "./poetic.yaml"

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config is the application configuration.
type Config struct {
	PoemsDir  string `yaml:"poems_dir"  env:"POETIC_POEMS_DIR"  env-default:"poems"`
	Workers   int    `yaml:"workers"    env:"POETIC_WORKERS"    env-default:"4"`
	LogFormat string `yaml:"log_format" env:"POETIC_LOG_FORMAT" env-default:"console"`
	LogLevel  string `yaml:"log_level"  env:"POETIC_LOG_LEVEL"  env-default:"warn"`
}

// Load reads configuration. Priority: ENV > YAML > defaults.
// The YAML path comes from POETIC_CONFIG, falling back to DefaultPath when
// that file exists.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("POETIC_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks values the tags cannot express.
func (c *Config) Validate() error {
	if c.PoemsDir == "" {
		return fmt.Errorf("poems_dir must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", c.Workers)
	}
	if !slices.Contains([]string{LogFormatConsole, LogFormatJSON}, c.LogFormat) {
		return fmt.Errorf("log_format must be %q or %q (got %q)", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}
