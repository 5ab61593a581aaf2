package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/integrators"
	"github.com/san-kum/aerosim/internal/physics"
	"github.com/san-kum/aerosim/internal/sim"
)

const (
	ModelFreeFall = "freefall"
	ModelWing     = "wing"

	DefaultStep         = 0.1
	DefaultDuration     = 5.0
	DefaultWingSpeed    = 10.0
	DefaultWingDuration = 10.0
	DefaultTrim         = 0.05
	DefaultFormat       = "text"
)

var Formats = []string{"text", "csv", "json"}

type Config struct {
	Model      string             `yaml:"model"`
	Integrator string             `yaml:"integrator"`
	FreeFall   sim.FreeFallParams `yaml:"freefall"`
	Wing       sim.WingParams     `yaml:"wing"`
	Output     OutputConfig       `yaml:"output"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Plot   bool   `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      ModelFreeFall,
		Integrator: "rk4",
		FreeFall: sim.FreeFallParams{
			Sphere:   physics.DefaultSphere(),
			Step:     DefaultStep,
			Duration: DefaultDuration,
		},
		Wing: sim.DefaultWingParams(DefaultWingSpeed, DefaultWingDuration, DefaultTrim),
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}

// Load reads a YAML run file over DefaultConfig, so omitted keys keep
// their defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML run file over base, which is modified in place.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the run contract before any stepping. The force models
// themselves accept anything.
func (c *Config) Validate() error {
	switch c.Model {
	case ModelFreeFall:
		if !(c.FreeFall.Step > 0) {
			return &dynamo.ConfigError{Field: "freefall.step", Value: c.FreeFall.Step, Reason: "must be positive"}
		}
		if !(c.FreeFall.Duration >= 0) {
			return &dynamo.ConfigError{Field: "freefall.duration", Value: c.FreeFall.Duration, Reason: "must not be negative"}
		}
	case ModelWing:
		if !(c.Wing.Dt > 0) {
			return &dynamo.ConfigError{Field: "wing.dt", Value: c.Wing.Dt, Reason: "must be positive"}
		}
		if !(c.Wing.Duration >= 0) {
			return &dynamo.ConfigError{Field: "wing.duration", Value: c.Wing.Duration, Reason: "must not be negative"}
		}
	default:
		return fmt.Errorf("%w: %q", dynamo.ErrUnknownModel, c.Model)
	}

	if _, err := integrators.ByName(c.Integrator); err != nil {
		return err
	}

	for _, f := range Formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownFormat, c.Output.Format, Formats)
}
