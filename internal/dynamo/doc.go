// Package dynamo provides the core primitives shared by the steppers,
// force models and run drivers.
//
//   - [State]: position and rate of a second-order system
//   - [Force]: pure acceleration function x'' = f(x, x', t)
//   - [Integrator]: single fixed-step advance of a [State]
//   - [Metric]: per-run observer reduced to one number
//
// # Example
//
//	sphere := physics.DefaultSphere()
//	rk4 := integrators.NewRK4()
//	s := dynamo.State{}
//	for i := 0; i < 50; i++ {
//	    s = rk4.Step(sphere.Force(), s, float64(i)*0.1, 0.1)
//	}
//
// # Thread Safety
//
// Every type in this package is a value or a pure function. Independent
// runs may execute in parallel without coordination.
package dynamo
