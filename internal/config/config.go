package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config holds the optional ambient settings. With no variables set the
// application runs with the defaults below.
type Config struct {
	LogLevel     string  `env:"PROBFORM_LOG_LEVEL"     envDefault:"info"`
	JSONLogs     bool    `env:"PROBFORM_JSON_LOGS"     envDefault:"false"`
	WindowWidth  float32 `env:"PROBFORM_WINDOW_WIDTH"  envDefault:"400"`
	WindowHeight float32 `env:"PROBFORM_WINDOW_HEIGHT" envDefault:"300"`
}

// Load parses the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, errors.Errorf("invalid window size %gx%g", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}

// Level returns the zerolog level named by LogLevel
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return level, nil
}
