// Package physics provides the force models driven by the steppers.
//
// Each model is a plain parameter struct whose Force method returns a
// [dynamo.Force] closed over a copy of those parameters:
//
//   - [Sphere]: free fall through a viscous fluid with a regime-dependent
//     drag coefficient ([SphereDragCoefficient])
//   - [Wing]: aeroelastic oscillator forced by linearized lift with a stall
//     cutoff ([LiftCoefficient])
//
// The models never validate their inputs. Zero viscosity or zero forward
// speed propagate as NaN or Inf through the trajectory.
//
//	f := physics.DefaultSphere().Force()
//	s := integrators.NewRK4().Step(f, dynamo.State{}, 0, 0.1)
package physics
