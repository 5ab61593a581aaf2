package sim

import (
	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/physics"
)

const DefaultWingDt = 0.1

type WingParams struct {
	Speed    float64 `yaml:"speed" json:"speed"`
	Duration float64 `yaml:"duration" json:"duration"`
	Trim     float64 `yaml:"trim" json:"trim"`
	Beta     float64 `yaml:"beta" json:"beta"`
	Dt       float64 `yaml:"dt" json:"dt"`
	Z0       float64 `yaml:"z0" json:"z0"`
	V0       float64 `yaml:"v0" json:"v0"`
}

func DefaultWingParams(speed, duration, trim float64) WingParams {
	return WingParams{
		Speed:    speed,
		Duration: duration,
		Trim:     trim,
		Beta:     physics.DefaultLiftCoupling,
		Dt:       DefaultWingDt,
	}
}

// Wing returns the force model for these parameters.
func (p WingParams) Wing() physics.Wing {
	return physics.NewWing(p.Beta, p.Speed, p.Trim)
}

type WingRecord struct {
	// Time is the float32 run clock widened to float64, e.g. 0.90000009536743164
	// rather than 0.9.
	Time     float64 `json:"t"`
	Position float64 `json:"z"`
	Velocity float64 `json:"v"`
	AngleDeg float64 `json:"ad"`
}

type WingResult struct {
	Params     WingParams         `json:"params"`
	Integrator string             `json:"integrator"`
	Records    []WingRecord       `json:"records"`
	Metrics    map[string]float64 `json:"metrics"`
}

// RunWing simulates the wing oscillator with beta 0.00183 and dt 0.1 from
// rest. See RunWingParams.
func RunWing(speed, duration, trim float64, opts ...Option) *WingResult {
	return RunWingParams(DefaultWingParams(speed, duration, trim), opts...)
}

// RunWingParams records (t, z, v, angle of attack in degrees) and then steps,
// for as long as the accumulated clock is below Duration. The clock
// accumulates in float32 (see IntegrateUntil), so the record count for a
// Duration that is not a multiple of Dt is the drift-prone one rather than
// ceil(Duration/Dt).
func RunWingParams(p WingParams, opts ...Option) *WingResult {
	o := newRunOptions(opts)

	wing := p.Wing()

	result := &WingResult{
		Params:     p,
		Integrator: o.integrator.Name(),
		Records:    make([]WingRecord, 0, StepCount(p.Duration, p.Dt)+1),
	}

	s0 := dynamo.State{X: p.Z0, V: p.V0}
	IntegrateUntil(o.integrator, wing.Force(), s0, p.Dt, p.Duration, func(t float64, s dynamo.State) {
		result.Records = append(result.Records, WingRecord{
			Time:     t,
			Position: s.X,
			Velocity: s.V,
			AngleDeg: physics.Degrees(wing.AngleOfAttack(s.V)),
		})
		o.observe(s, t)
	})

	result.Metrics = o.collect()
	return result
}
