package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/aerosim/internal/dynamo"
)

func TestStability(t *testing.T) {
	m := NewStability(10)

	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 with no samples, got %f", m.Value())
	}

	m.Observe(dynamo.State{X: 1, V: 1}, 0)
	m.Observe(dynamo.State{X: 20, V: 1}, 0.1)
	m.Observe(dynamo.State{X: math.NaN(), V: 0}, 0.2)
	m.Observe(dynamo.State{X: 0, V: -5}, 0.3)

	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected stability 0.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 after reset, got %f", m.Value())
	}
}

func TestStabilityFiniteOnly(t *testing.T) {
	m := NewStability(0)
	m.Observe(dynamo.State{X: 1e300, V: -1e300}, 0)
	m.Observe(dynamo.State{X: 0, V: math.Inf(1)}, 0)

	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected stability 0.5, got %f", m.Value())
	}
}

func TestPeakSpeed(t *testing.T) {
	m := NewPeakSpeed()
	for _, v := range []float64{1, -7, 3} {
		m.Observe(dynamo.State{V: v}, 0)
	}

	if m.Value() != 7 {
		t.Errorf("expected peak speed 7, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected zero after reset, got %f", m.Value())
	}
}

func TestSettling(t *testing.T) {
	m := NewSettling()

	m.Observe(dynamo.State{V: 5}, 0)
	if m.Value() != 0 {
		t.Errorf("expected zero after one sample, got %f", m.Value())
	}

	m.Observe(dynamo.State{V: 8}, 0.1)
	m.Observe(dynamo.State{V: 8.5}, 0.2)
	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected settling 0.5, got %f", m.Value())
	}
}

func TestAmplitude(t *testing.T) {
	m := NewAmplitude()
	for _, x := range []float64{0.1, -0.4, 0.3} {
		m.Observe(dynamo.State{X: x}, 0)
	}

	if m.Value() != 0.4 {
		t.Errorf("expected amplitude 0.4, got %f", m.Value())
	}
}

func TestForModel(t *testing.T) {
	tests := []struct {
		model    string
		expected []string
	}{
		{"freefall", []string{"peak_speed", "settling", "stability"}},
		{"wing", []string{"amplitude", "peak_speed", "stability"}},
		{"other", []string{"stability"}},
	}

	for _, tt := range tests {
		ms := ForModel(tt.model)
		if len(ms) != len(tt.expected) {
			t.Fatalf("model %s: expected %d metrics, got %d", tt.model, len(tt.expected), len(ms))
		}
		for i, m := range ms {
			if m.Name() != tt.expected[i] {
				t.Errorf("model %s: metric %d = %s, want %s", tt.model, i, m.Name(), tt.expected[i])
			}
		}
	}
}
