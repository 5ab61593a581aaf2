package sim

import (
	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/integrators"
)

type runOptions struct {
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
}

type Option func(*runOptions)

// WithIntegrator replaces the default RK4 stepper.
func WithIntegrator(integ dynamo.Integrator) Option {
	return func(o *runOptions) {
		if integ != nil {
			o.integrator = integ
		}
	}
}

// WithMetrics attaches metrics that observe every reported state. Metrics
// are stateful and must not be shared between concurrent runs.
func WithMetrics(metrics ...dynamo.Metric) Option {
	return func(o *runOptions) {
		o.metrics = append(o.metrics, metrics...)
	}
}

func newRunOptions(opts []Option) *runOptions {
	o := &runOptions{integrator: integrators.NewRK4()}
	for _, opt := range opts {
		opt(o)
	}
	for _, m := range o.metrics {
		m.Reset()
	}
	return o
}

func (o *runOptions) observe(s dynamo.State, t float64) {
	for _, m := range o.metrics {
		m.Observe(s, t)
	}
}

func (o *runOptions) collect() map[string]float64 {
	values := make(map[string]float64, len(o.metrics))
	for _, m := range o.metrics {
		values[m.Name()] = m.Value()
	}
	return values
}
