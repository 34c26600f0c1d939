// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Typed dispatcher configuration with defaults, validation, and YAML loading.

package control

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds parameters immutable per dispatcher run.
type Config struct {
	// TickInterval is the period of the timer source.
	TickInterval time.Duration `yaml:"tick_interval"`

	// RegistryCapacity bounds the handler entry arena.
	RegistryCapacity int `yaml:"registry_capacity"`

	// PinCPU pins the dispatch thread to a logical CPU; -1 disables pinning.
	PinCPU int `yaml:"pin_cpu"`

	// LogISRErrors controls logging of non-nil ISR return values.
	LogISRErrors bool `yaml:"log_isr_errors"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		TickInterval:     time.Millisecond,
		RegistryCapacity: 64,
		PinCPU:           -1,
		LogISRErrors:     true,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.RegistryCapacity <= 0 {
		return fmt.Errorf("config: registry_capacity must be positive, got %d", c.RegistryCapacity)
	}
	return nil
}

// Snapshot exports the configuration as a flat key/value map for the
// control surface.
func (c *Config) Snapshot() map[string]any {
	return map[string]any{
		"tick_interval":     c.TickInterval.String(),
		"registry_capacity": c.RegistryCapacity,
		"pin_cpu":           c.PinCPU,
		"log_isr_errors":    c.LogISRErrors,
	}
}

// UnmarshalYAML decodes the config, accepting human-readable durations
// ("1ms", "500us") for tick_interval. Absent fields keep their current
// values, so defaults survive partial files.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		TickInterval     *string `yaml:"tick_interval"`
		RegistryCapacity *int    `yaml:"registry_capacity"`
		PinCPU           *int    `yaml:"pin_cpu"`
		LogISRErrors     *bool   `yaml:"log_isr_errors"`
	}{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.TickInterval != nil {
		d, err := time.ParseDuration(*raw.TickInterval)
		if err != nil {
			return fmt.Errorf("config: tick_interval: %w", err)
		}
		c.TickInterval = d
	}
	if raw.RegistryCapacity != nil {
		c.RegistryCapacity = *raw.RegistryCapacity
	}
	if raw.PinCPU != nil {
		c.PinCPU = *raw.PinCPU
	}
	if raw.LogISRErrors != nil {
		c.LogISRErrors = *raw.LogISRErrors
	}
	return nil
}

// FromYAML loads a Config from a YAML file, applying defaults for
// unspecified fields.
func FromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
