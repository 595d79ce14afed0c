// Package config holds the runtime configuration shared by the doccheck
// commands, resolved from defaults, DOCCHECK_* environment variables, and
// command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB per PDF

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. DOCCHECK_LOGLEVEL=debug.
	EnvPrefix = "DOCCHECK"
)

// Config holds all configuration for the doccheck tools.
type Config struct {
	// Directory is the default documentation directory for check and serve.
	Directory string

	// SpecRef selects the checklist specification: a built-in name
	// ("turbine", "jobbook") or a path to a YAML spec file.
	SpecRef string

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Directory:   ".",
		SpecRef:     "turbine",
		Version:     "1.0.0",
		ServerName:  "doccheck",
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// Load resolves the configuration from defaults, environment variables, and
// the given flag set (typically a cobra command's flags, already parsed).
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("dir", cfg.Directory)
	v.SetDefault("spec", cfg.SpecRef)
	v.SetDefault("loglevel", cfg.LogLevel)
	v.SetDefault("maxfilesize", cfg.MaxFileSize)

	if flags != nil {
		for _, name := range []string{"dir", "spec", "loglevel", "maxfilesize"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg.Directory = v.GetString("dir")
	cfg.SpecRef = v.GetString("spec")
	cfg.LogLevel = v.GetString("loglevel")
	cfg.MaxFileSize = v.GetInt64("maxfilesize")

	if cfg.Directory != "" {
		if expanded, err := filepath.Abs(cfg.Directory); err == nil {
			cfg.Directory = expanded
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return errors.New("directory cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Directory: %s, SpecRef: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Directory, c.SpecRef, c.LogLevel, c.MaxFileSize)
}
