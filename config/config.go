// Package config loads checker settings from an optional YAML file and
// TRANSCHECK_* environment variables.
//
// Priority is environment, then file, then the env-default tags.
package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/signadot/transcheck/diag"
	"github.com/signadot/transcheck/normalize"
	"github.com/signadot/transcheck/report"
	"github.com/signadot/transcheck/walk"
)

var ErrConfig = errors.New("config")

// Config is the checker configuration.
//
// An empty Separators list selects normalize.DefaultSeparators.
type Config struct {
	Separators []string `yaml:"separators" env:"TRANSCHECK_SEPARATORS" env-separator:" "`
	MaxNodes   int      `yaml:"max_nodes"  env:"TRANSCHECK_MAX_NODES"  env-default:"1000000"`
	Ignore     []string `yaml:"ignore"     env:"TRANSCHECK_IGNORE"     env-separator:";"`
	Color      string   `yaml:"color"      env:"TRANSCHECK_COLOR"      env-default:"auto"`
	Report     string   `yaml:"report"     env:"TRANSCHECK_REPORT"     env-default:"text"`
}

// Default returns the configuration implied by the environment alone.
func Default() (*Config, error) {
	return Load("")
}

// Load reads the file at path, when path is not empty, then the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: read env: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting and compiles the ignore expressions.
func (c *Config) Validate() error {
	if c.MaxNodes < 1 {
		return fmt.Errorf("%w: max_nodes must be > 0 (got %d)", ErrConfig, c.MaxNodes)
	}
	if !report.ColorMode(c.Color).Valid() {
		return fmt.Errorf("%w: color must be auto, always or never (got %q)", ErrConfig, c.Color)
	}
	if _, err := report.ParseOutput(c.Report); err != nil {
		return fmt.Errorf("%w: report: %w", ErrConfig, err)
	}
	if _, err := c.Normalizer(); err != nil {
		return err
	}
	if _, err := c.Filter(); err != nil {
		return err
	}
	return nil
}

// Normalizer builds the string normalizer for the configured separators.
func (c *Config) Normalizer() (*normalize.Normalizer, error) {
	if len(c.Separators) == 0 {
		return normalize.Default(), nil
	}
	n, err := normalize.New(c.Separators...)
	if err != nil {
		return nil, fmt.Errorf("%w: separators: %w", ErrConfig, err)
	}
	return n, nil
}

// Filter compiles the ignore expressions.
func (c *Config) Filter() (*diag.Filter, error) {
	f, err := diag.NewFilter(c.Ignore...)
	if err != nil {
		return nil, fmt.Errorf("%w: ignore: %w", ErrConfig, err)
	}
	return f, nil
}

func (c *Config) WalkOptions() []walk.Option {
	return []walk.Option{walk.MaxNodes(c.MaxNodes)}
}

func (c *Config) ColorMode() report.ColorMode {
	return report.ColorMode(c.Color)
}

// Output returns the configured report rendering, text if invalid.
func (c *Config) Output() report.Output {
	o, _ := report.ParseOutput(c.Report)
	return o
}
