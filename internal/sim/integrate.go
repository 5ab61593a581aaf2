package sim

import (
	"math"

	"github.com/san-kum/aerosim/internal/dynamo"
)

// Integrate advances s0 by exactly steps fixed steps of size h. After every
// step visit receives the 1-based step index, the time n*h recomputed by
// multiplication, and the new state.
func Integrate(integ dynamo.Integrator, f dynamo.Force, s0 dynamo.State, h float64, steps int, visit func(n int, t float64, s dynamo.State)) dynamo.State {
	s := s0
	for n := 1; n <= steps; n++ {
		s = integ.Step(f, s, float64(n-1)*h, h)
		if visit != nil {
			visit(n, float64(n)*h, s)
		}
	}
	return s
}

// IntegrateUntil steps s0 while an accumulated clock stays below end. visit
// receives the clock and the state before every step.
//
// The clock is a float32 sum of h, so the number of iterations for an end
// that is not a multiple of h follows single-precision rounding: end=1.0
// with h=0.1 runs ten iterations, where a float64 sum would run eleven.
func IntegrateUntil(integ dynamo.Integrator, f dynamo.Force, s0 dynamo.State, h, end float64, visit func(t float64, s dynamo.State)) dynamo.State {
	s := s0
	dt := float32(h)
	limit := float32(end)

	for t := float32(0); t < limit; {
		if visit != nil {
			visit(float64(t), s)
		}
		s = integ.Step(f, s, float64(t), h)

		next := t + dt
		if next <= t {
			break // clock stalled: h is zero, negative or below float32 resolution
		}
		t = next
	}
	return s
}

// StepCount is ceil(duration/step), or zero when that is not a finite
// non-negative number.
func StepCount(duration, step float64) int {
	n := math.Ceil(duration / step)
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return int(n)
}
