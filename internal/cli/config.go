package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration
type Config struct {
	Output    string     `env:"RPS_OUTPUT" envDefault:"text"`
	LogLevel  slog.Level `env:"RPS_LOG_LEVEL" envDefault:"WARN"`
	LogFormat string     `env:"RPS_LOG_FORMAT" envDefault:"text"`
	Verbose   bool       `env:"RPS_VERBOSE"`
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the output and log formats are known
func (c *Config) Validate() error {
	if c.Output != FormatText && c.Output != FormatJSON {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	return nil
}

// Level returns the effective log level; verbose forces debug
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return c.LogLevel
}

// NewLogger builds the application logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}

	var handler slog.Handler
	if c.LogFormat == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
