package dynamo

import (
	"fmt"
	"math"
)

// State is the (position, rate) pair of a second-order system reduced to
// first order.
type State struct {
	X float64
	V float64
}

func (s State) IsValid() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) &&
		!math.IsNaN(s.V) && !math.IsInf(s.V, 0)
}

func (s State) String() string {
	return fmt.Sprintf("(x=%g, v=%g)", s.X, s.V)
}

// Force returns dV/dt for the given position, rate and time.
// Implementations must be pure.
type Force func(x, v, t float64) float64

type Integrator interface {
	Name() string
	Step(f Force, s State, t, h float64) State
}

type Metric interface {
	Name() string
	Observe(s State, t float64)
	Value() float64
	Reset()
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
