package integrators

import "github.com/san-kum/aerosim/internal/dynamo"

// RK4 is the classical four-stage Runge-Kutta stepper for x'' = f(x, x', t).
// It holds no state between steps.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(f dynamo.Force, s dynamo.State, t, h float64) dynamo.State {
	x, p := s.X, s.V

	k1x := h * p
	k1p := h * f(x, p, t)

	k2x := h * (p + k1p/2)
	k2p := h * f(x+k1x/2, p+k1p/2, t+h/2)

	k3x := h * (p + k2p/2)
	k3p := h * f(x+k2x/2, p+k2p/2, t+h/2)

	k4x := h * (p + k3p)
	k4p := h * f(x+k3x, p+k3p, t+h)

	return dynamo.State{
		X: x + (k1x+2*k2x+2*k3x+k4x)/6,
		V: p + (k1p+2*k2p+2*k3p+k4p)/6,
	}
}
