package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults for the CLI flags and logging settings, read from
// the environment (and a .env file loaded by main).
type Config struct {
	Length    int  `env:"PASSGEN_LENGTH"    envDefault:"16"`
	Uppercase bool `env:"PASSGEN_UPPERCASE" envDefault:"false"`
	Digits    bool `env:"PASSGEN_DIGITS"    envDefault:"false"`
	Special   bool `env:"PASSGEN_SPECIAL"   envDefault:"false"`

	LogLevel  string `env:"PASSGEN_LOG_LEVEL"  envDefault:"error"`
	LogFormat string `env:"PASSGEN_LOG_FORMAT" envDefault:"text"`

	Quiet   bool `env:"PASSGEN_QUIET" envDefault:"false"`
	NoColor bool `env:"NO_COLOR"      envDefault:"false"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("config: PASSGEN_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: invalid PASSGEN_LOG_LEVEL %q", c.LogLevel)
	}
	return level, nil
}
