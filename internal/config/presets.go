package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/physics"
	"github.com/san-kum/aerosim/internal/sim"
)

var Presets = map[string]map[string]*Config{
	ModelFreeFall: {
		"steel-air": {
			Model: ModelFreeFall, Integrator: "rk4",
			FreeFall: sim.FreeFallParams{Sphere: physics.DefaultSphere(), Step: 0.1, Duration: 5.0},
		},
		"steel-water": {
			Model: ModelFreeFall, Integrator: "rk4",
			FreeFall: sim.FreeFallParams{
				Sphere:   physics.Sphere{Diameter: 0.01, KinematicViscosity: 1.0e-6, SphereDensity: 8000, FluidDensity: 1000, Gravity: 9.8},
				Step:     0.01,
				Duration: 2.0,
			},
		},
		"glass-oil": {
			Model: ModelFreeFall, Integrator: "rk4",
			FreeFall: sim.FreeFallParams{
				Sphere:   physics.Sphere{Diameter: 0.005, KinematicViscosity: 1.0e-4, SphereDensity: 2500, FluidDensity: 900, Gravity: 9.8},
				Step:     0.01,
				Duration: 2.0,
			},
		},
	},
	ModelWing: {
		"trim": {
			Model: ModelWing, Integrator: "rk4",
			Wing: sim.DefaultWingParams(10, 10, 0.05),
		},
		"stall": {
			Model: ModelWing, Integrator: "rk4",
			Wing: sim.DefaultWingParams(10, 10, 0.4),
		},
		"gust": {
			Model: ModelWing, Integrator: "rk4",
			Wing: sim.WingParams{Speed: 5, Duration: 20, Trim: 0.1, Beta: physics.DefaultLiftCoupling, Dt: 0.1, V0: -1},
		},
	},
}

// GetPreset returns a copy of the named preset with default output settings.
func GetPreset(model, preset string) (*Config, error) {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", dynamo.ErrUnknownModel, model)
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownPreset, preset, ListPresets(model))
	}

	c := *cfg
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	return &c, nil
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
