package integrators

import "github.com/san-kum/aerosim/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f dynamo.Force, s dynamo.State, t, h float64) dynamo.State {
	return dynamo.State{
		X: s.X + h*s.V,
		V: s.V + h*f(s.X, s.V, t),
	}
}
