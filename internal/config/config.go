// Package config loads cdeps configuration from file, environment
// variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultWorkers is the default cap on parallel file reads during mapping.
const DefaultWorkers = 8

// Config is the top-level configuration struct for cdeps.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	SourceExtensions []string `mapstructure:"source_extensions"`
	HeaderExtensions []string `mapstructure:"header_extensions"`
	IncludeDirs      []string `mapstructure:"include_dirs"`
	ExcludeDirs      []string `mapstructure:"exclude_dirs"`
	Workers          int      `mapstructure:"workers"`
}

// ErrInvalidWorkers indicates a non-positive worker count.
var ErrInvalidWorkers = errors.New("workers must be positive")

// ErrInvalidExtension indicates an extension missing its leading dot.
var ErrInvalidExtension = errors.New("extension must start with a dot")

// Validate checks the configuration for internally inconsistent values.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}

	for _, ext := range c.SourceExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	for _, ext := range c.HeaderExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	return nil
}
