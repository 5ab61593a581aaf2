package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/aerosim/internal/dynamo"
)

const (
	DefaultLiftCoupling = 0.00183

	// StallAngle bounds the linear lift band on both sides, in radians.
	StallAngle = math.Pi / 10
)

// LiftCoefficient is thin-airfoil lift 2πα inside [-StallAngle, StallAngle]
// and zero outside it.
func LiftCoefficient(angle float64) float64 {
	if angle >= -StallAngle && angle <= StallAngle {
		return 2 * math.Pi * angle
	}
	return 0
}

// Wing is a flexible wing section modelled as a linear oscillator with
// natural frequency 1 Hz, forced by lift at the induced angle of attack.
type Wing struct {
	Beta  float64 `yaml:"beta" json:"beta"`
	Speed float64 `yaml:"speed" json:"speed"`
	Trim  float64 `yaml:"trim" json:"trim"`
}

func NewWing(beta, speed, trim float64) Wing {
	return Wing{Beta: beta, Speed: speed, Trim: trim}
}

// AngleOfAttack is the trim angle reduced by the induced angle atan(v/u).
// A zero forward speed yields NaN or ±π/2 per IEEE rules.
func (w Wing) AngleOfAttack(v float64) float64 {
	return w.Trim - math.Atan(v/w.Speed)
}

// Force returns the forcing function -(2π)²z + β·Cl(α)·u·|(u, v)|.
// Time is unused.
func (w Wing) Force() dynamo.Force {
	k := (2 * math.Pi) * (2 * math.Pi)
	return func(z, v, t float64) float64 {
		u := w.Speed
		lift := w.Beta * LiftCoefficient(w.AngleOfAttack(v)) * u * math.Sqrt(u*u+v*v)
		return -k*z + lift
	}
}

func (w Wing) GetParams() map[string]float64 {
	return map[string]float64{
		"beta":  w.Beta,
		"speed": w.Speed,
		"trim":  w.Trim,
	}
}

func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func (w *Wing) SetParam(name string, value float64) error {
	switch name {
	case "beta":
		w.Beta = value
	case "speed":
		w.Speed = value
	case "trim":
		w.Trim = value
	default:
		return fmt.Errorf("%w: wing has no %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}
