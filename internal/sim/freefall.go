package sim

import (
	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/physics"
)

type FreeFallParams struct {
	Z0       float64        `yaml:"z0" json:"z0"`
	V0       float64        `yaml:"v0" json:"v0"`
	Sphere   physics.Sphere `yaml:"sphere" json:"sphere"`
	Step     float64        `yaml:"step" json:"step"`
	Duration float64        `yaml:"duration" json:"duration"`
}

type FreeFallRecord struct {
	Step     int     `json:"step"`
	Time     float64 `json:"time"`
	Position float64 `json:"z"`
	Velocity float64 `json:"v"`
}

type FreeFallResult struct {
	Params     FreeFallParams     `json:"params"`
	Integrator string             `json:"integrator"`
	Records    []FreeFallRecord   `json:"records"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Final returns the last record, which is the initial record for a
// zero-length run.
func (r *FreeFallResult) Final() FreeFallRecord {
	return r.Records[len(r.Records)-1]
}

// RunFreeFall integrates a falling sphere for ceil(Duration/Step) steps.
// Records[0] is the initial state at step 0; record n is reported at time
// n*Step.
func RunFreeFall(p FreeFallParams, opts ...Option) *FreeFallResult {
	o := newRunOptions(opts)
	steps := StepCount(p.Duration, p.Step)

	result := &FreeFallResult{
		Params:     p,
		Integrator: o.integrator.Name(),
		Records:    make([]FreeFallRecord, 0, steps+1),
	}

	s0 := dynamo.State{X: p.Z0, V: p.V0}
	result.Records = append(result.Records, FreeFallRecord{Step: 0, Time: 0, Position: s0.X, Velocity: s0.V})
	o.observe(s0, 0)

	Integrate(o.integrator, p.Sphere.Force(), s0, p.Step, steps, func(n int, t float64, s dynamo.State) {
		result.Records = append(result.Records, FreeFallRecord{Step: n, Time: t, Position: s.X, Velocity: s.V})
		o.observe(s, t)
	})

	result.Metrics = o.collect()
	return result
}

// FreeFall is RunFreeFall with scalar arguments.
func FreeFall(z0, v0, diameter, kinematicViscosity, sphereDensity, fluidDensity, gravity, step, duration float64, opts ...Option) *FreeFallResult {
	return RunFreeFall(FreeFallParams{
		Z0: z0,
		V0: v0,
		Sphere: physics.Sphere{
			Diameter:           diameter,
			KinematicViscosity: kinematicViscosity,
			SphereDensity:      sphereDensity,
			FluidDensity:       fluidDensity,
			Gravity:            gravity,
		},
		Step:     step,
		Duration: duration,
	}, opts...)
}
