package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/aerosim/internal/config"
)

// resolveConfig layers defaults, then --preset, then --config, then any
// flag set explicitly on the command line.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(model, preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Model = model

	flags := cmd.Flags()
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("plot") {
		cfg.Output.Plot = plot
	}

	var targets map[string]*float64
	switch model {
	case config.ModelFreeFall:
		ff := &cfg.FreeFall
		targets = map[string]*float64{
			"z0":             &ff.Z0,
			"v0":             &ff.V0,
			"diameter":       &ff.Sphere.Diameter,
			"viscosity":      &ff.Sphere.KinematicViscosity,
			"sphere-density": &ff.Sphere.SphereDensity,
			"fluid-density":  &ff.Sphere.FluidDensity,
			"gravity":        &ff.Sphere.Gravity,
			"step":           &ff.Step,
			"duration":       &ff.Duration,
		}
	case config.ModelWing:
		w := &cfg.Wing
		targets = map[string]*float64{
			"speed":    &w.Speed,
			"duration": &w.Duration,
			"trim":     &w.Trim,
			"beta":     &w.Beta,
			"dt":       &w.Dt,
			"z0":       &w.Z0,
			"v0":       &w.V0,
		}
	}

	for name, dst := range targets {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return nil, err
		}
		*dst = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
