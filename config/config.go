// Package config loads simulator settings from YAML.
package config

import (
	"fmt"
	"os"
	"pagesim/file"
	"pagesim/frame"
	"pagesim/log"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of a simulation run. Command-line flags override values loaded from a file.
type Config struct {
	Frames        int        `yaml:"frames"`
	Policy        string     `yaml:"policy"`
	TraceFile     string     `yaml:"trace_file"`
	MaxReferences int        `yaml:"max_references"`
	MetricsFile   string     `yaml:"metrics_file"`
	Log           log.Config `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Frames:        3,
		Policy:        frame.FIFO.String(),
		MaxReferences: file.DefaultMaxReferences,
		Log:           log.DefaultConfig(),
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// Validate checks the frame count, policy name and reference bound.
func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("%w: %d (must be at least 1)", frame.ErrInvalidFrameCount, c.Frames)
	}
	if _, err := frame.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if c.MaxReferences <= 0 {
		return fmt.Errorf("max_references must be positive, got %d", c.MaxReferences)
	}
	return nil
}

// ParsedPolicy returns the configured policy. Validate must have succeeded.
func (c *Config) ParsedPolicy() frame.Policy {
	p, _ := frame.ParsePolicy(c.Policy)
	return p
}

// Source returns the reference supplier for the configured trace file.
func (c *Config) Source() file.Source {
	return file.NewTraceFile(c.TraceFile, c.MaxReferences)
}
