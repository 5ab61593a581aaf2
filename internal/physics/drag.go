package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/aerosim/internal/dynamo"
)

const (
	DefaultDiameter           = 0.01
	DefaultKinematicViscosity = 0.0000149
	DefaultSphereDensity      = 8000.0
	DefaultFluidDensity       = 1.22
	DefaultGravity            = 9.8

	// plateauCd is the drag coefficient between Re 400 and 3e5.
	plateauCd = 0.5
)

// Reynolds returns velocity*diameter/kinematicViscosity. The sign follows
// velocity; zero viscosity yields Inf or NaN.
func Reynolds(velocity, diameter, kinematicViscosity float64) float64 {
	return velocity * diameter / kinematicViscosity
}

// SphereDragCoefficient is the piecewise empirical Cd(Re) correlation for a
// smooth sphere. Each band is inclusive at its upper end. The correlation
// jumps from about 0.521 to 0.5 across Re = 400; the fit is reproduced as is.
// The fit is defined for Re >= 0; Acceleration passes |Re|.
func SphereDragCoefficient(re float64) float64 {
	switch {
	case re == 0:
		return 0
	case re <= 1:
		return 24 / re // Stokes
	case re <= 400:
		return 25 / math.Pow(re, 0.646)
	case re <= 3e5:
		return plateauCd
	case re <= 2e6:
		return 0.000366 * math.Pow(re, 0.4275)
	default:
		return 0.18
	}
}

// Acceleration is the net acceleration of a sphere moving at velocity
// through a fluid, with buoyancy, added mass and quadratic drag that always
// opposes the motion. Cd is looked up on |Re| so upward motion is damped
// like downward motion.
func Acceleration(velocity, diameter, kinematicViscosity, sphereDensity, fluidDensity, gravity float64) float64 {
	re := Reynolds(velocity, diameter, kinematicViscosity)
	cd := SphereDragCoefficient(math.Abs(re))

	rho := fluidDensity / sphereDensity
	a := 1 + 0.5*rho
	b := (1 - rho) * gravity
	c := 0.75 * rho / diameter

	return (1 / a) * (b - c*cd*math.Abs(velocity)*velocity)
}

// Sphere holds the fixed physical parameters of one free-fall run.
type Sphere struct {
	Diameter           float64 `yaml:"diameter" json:"diameter"`
	KinematicViscosity float64 `yaml:"kinematic_viscosity" json:"kinematic_viscosity"`
	SphereDensity      float64 `yaml:"sphere_density" json:"sphere_density"`
	FluidDensity       float64 `yaml:"fluid_density" json:"fluid_density"`
	Gravity            float64 `yaml:"gravity" json:"gravity"`
}

// DefaultSphere is a 1 cm steel ball in air.
func DefaultSphere() Sphere {
	return Sphere{
		Diameter:           DefaultDiameter,
		KinematicViscosity: DefaultKinematicViscosity,
		SphereDensity:      DefaultSphereDensity,
		FluidDensity:       DefaultFluidDensity,
		Gravity:            DefaultGravity,
	}
}

func (s Sphere) Reynolds(velocity float64) float64 {
	return Reynolds(velocity, s.Diameter, s.KinematicViscosity)
}

func (s Sphere) Acceleration(velocity float64) float64 {
	return Acceleration(velocity, s.Diameter, s.KinematicViscosity, s.SphereDensity, s.FluidDensity, s.Gravity)
}

// Force adapts the sphere to the stepper. Position and time are ignored:
// drag depends only on velocity, and Re is recomputed at every stage.
func (s Sphere) Force() dynamo.Force {
	return func(x, v, t float64) float64 {
		return s.Acceleration(v)
	}
}

// TerminalVelocity estimates the settling speed assuming the Cd plateau.
// It is a reporting aid; the simulation never uses it.
func (s Sphere) TerminalVelocity() float64 {
	rho := s.FluidDensity / s.SphereDensity
	b := (1 - rho) * s.Gravity
	c := 0.75 * rho / s.Diameter
	return math.Copysign(math.Sqrt(math.Abs(b)/(c*plateauCd)), b)
}

func (s Sphere) GetParams() map[string]float64 {
	return map[string]float64{
		"diameter":            s.Diameter,
		"kinematic_viscosity": s.KinematicViscosity,
		"sphere_density":      s.SphereDensity,
		"fluid_density":       s.FluidDensity,
		"gravity":             s.Gravity,
	}
}

func (s *Sphere) SetParam(name string, value float64) error {
	switch name {
	case "diameter":
		s.Diameter = value
	case "kinematic_viscosity":
		s.KinematicViscosity = value
	case "sphere_density":
		s.SphereDensity = value
	case "fluid_density":
		s.FluidDensity = value
	case "gravity":
		s.Gravity = value
	default:
		return fmt.Errorf("%w: sphere has no %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}
