package metrics

import (
	"math"

	"github.com/san-kum/aerosim/internal/dynamo"
)

// PeakSpeed tracks the largest |v| seen.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(x dynamo.State, t float64) {
	p.peak = math.Max(p.peak, abs(x.V))
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }

// Settling is |Δv| between the last two observed states. It drops toward
// zero as a falling body approaches terminal velocity.
type Settling struct {
	prev    float64
	delta   float64
	samples int
}

func NewSettling() *Settling { return &Settling{} }

func (s *Settling) Name() string { return "settling" }

func (s *Settling) Observe(x dynamo.State, t float64) {
	if s.samples > 0 {
		s.delta = abs(x.V - s.prev)
	}
	s.prev = x.V
	s.samples++
}

func (s *Settling) Value() float64 { return s.delta }

func (s *Settling) Reset() {
	s.prev = 0
	s.delta = 0
	s.samples = 0
}

// Amplitude tracks the largest |x| seen.
type Amplitude struct {
	peak float64
}

func NewAmplitude() *Amplitude { return &Amplitude{} }

func (a *Amplitude) Name() string { return "amplitude" }

func (a *Amplitude) Observe(x dynamo.State, t float64) {
	a.peak = math.Max(a.peak, abs(x.X))
}

func (a *Amplitude) Value() float64 { return a.peak }

func (a *Amplitude) Reset() { a.peak = 0 }

func abs(v float64) float64 { return math.Abs(v) }
