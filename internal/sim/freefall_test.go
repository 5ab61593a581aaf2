package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/integrators"
	"github.com/san-kum/aerosim/internal/physics"
)

func steelInAir(opts ...Option) *FreeFallResult {
	return FreeFall(0.0, 0.0, 0.01, 0.0000149, 8000.0, 1.22, 9.8, 0.1, 5.0, opts...)
}

func TestFreeFallSteelInAir(t *testing.T) {
	result := steelInAir()

	require.Len(t, result.Records, 51)
	assert.Equal(t, FreeFallRecord{Step: 0, Time: 0, Position: 0, Velocity: 0}, result.Records[0])

	assert.Equal(t, 1, result.Records[1].Step)
	assert.Equal(t, 0.1, result.Records[1].Time)
	assert.Equal(t, 50, result.Records[50].Step)
	assert.Equal(t, 5.0, result.Records[50].Time)
	assert.Equal(t, "rk4", result.Integrator)
}

func TestFreeFallTimesAreMultiples(t *testing.T) {
	result := steelInAir()

	for n, rec := range result.Records {
		assert.Equal(t, n, rec.Step)
		assert.Equal(t, float64(n)*0.1, rec.Time)
	}
}

// With gravity +9.8 the sphere accelerates in the positive direction, so
// the rate grows monotonically from rest toward the terminal value.
func TestFreeFallVelocityFollowsGravity(t *testing.T) {
	result := steelInAir()

	prev := 0.0
	for _, rec := range result.Records[1:] {
		assert.Greater(t, rec.Velocity, prev)
		assert.Greater(t, rec.Position, 0.0)
		prev = rec.Velocity
	}

	vt := physics.DefaultSphere().TerminalVelocity()
	assert.Less(t, result.Final().Velocity, vt)
}

func TestFreeFallTerminalVelocity(t *testing.T) {
	sphere := physics.DefaultSphere()
	result := RunFreeFall(FreeFallParams{Sphere: sphere, Step: 0.1, Duration: 100})

	require.Len(t, result.Records, 1001)

	last := result.Records[1000].Velocity
	prev := result.Records[999].Velocity

	assert.InDelta(t, 0, last-prev, 1e-9)
	assert.InDelta(t, sphere.TerminalVelocity(), last, 1e-6)
	assert.InDelta(t, 0, sphere.Acceleration(last), 1e-6)
}

func TestFreeFallMatchesManualStepping(t *testing.T) {
	sphere := physics.DefaultSphere()
	rk4 := integrators.NewRK4()
	f := sphere.Force()

	s := dynamo.State{}
	for i := 0; i < 10; i++ {
		s = rk4.Step(f, s, float64(i)*0.1, 0.1)
	}

	result := RunFreeFall(FreeFallParams{Sphere: sphere, Step: 0.1, Duration: 1.0})
	assert.Equal(t, s.X, result.Final().Position)
	assert.Equal(t, s.V, result.Final().Velocity)
}

func TestFreeFallRoundsStepsUp(t *testing.T) {
	result := RunFreeFall(FreeFallParams{Sphere: physics.DefaultSphere(), Step: 0.3, Duration: 1.0})

	require.Len(t, result.Records, 5)
	assert.InDelta(t, 1.2, result.Final().Time, 1e-12)
}

func TestFreeFallZeroDuration(t *testing.T) {
	result := RunFreeFall(FreeFallParams{Z0: 2, V0: -1, Sphere: physics.DefaultSphere(), Step: 0.1})

	require.Len(t, result.Records, 1)
	assert.Equal(t, FreeFallRecord{Position: 2, Velocity: -1}, result.Final())
}

func TestFreeFallDeterministic(t *testing.T) {
	a := steelInAir()
	b := steelInAir()

	assert.Equal(t, a.Records, b.Records)
}

func TestFreeFallZeroViscosityPropagates(t *testing.T) {
	result := FreeFall(0, 0, 0.01, 0, 8000.0, 1.22, 9.8, 0.1, 1.0)

	require.Len(t, result.Records, 11)
	for _, rec := range result.Records {
		assert.False(t, math.IsNaN(rec.Time))
	}
}

func TestFreeFallUpwardLaunchIsDamped(t *testing.T) {
	sphere := physics.DefaultSphere()
	result := RunFreeFall(FreeFallParams{V0: -10, Sphere: sphere, Step: 0.1, Duration: 0.1})
	require.Len(t, result.Records, 2)

	// with drag the sphere must lose more upward speed than gravity alone removes
	dragFree := -10 + sphere.Acceleration(0)*0.1
	v := result.Final().Velocity
	assert.Less(t, v, 0.0)
	assert.Greater(t, v, dragFree)
}

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string                      { return "count" }
func (c *countingMetric) Observe(s dynamo.State, t float64) { c.count++ }
func (c *countingMetric) Value() float64                    { return float64(c.count) }
func (c *countingMetric) Reset()                            { c.count = 0 }

func TestFreeFallMetrics(t *testing.T) {
	m := &countingMetric{count: 99}
	result := steelInAir(WithMetrics(m))

	assert.Equal(t, 51, m.count)
	assert.Equal(t, 51.0, result.Metrics["count"])
}

func TestFreeFallEuler(t *testing.T) {
	result := steelInAir(WithIntegrator(integrators.NewEuler()))

	assert.Equal(t, "euler", result.Integrator)
	require.Len(t, result.Records, 51)
	assert.InDelta(t, 0, result.Records[1].Position, 1e-12)
}
