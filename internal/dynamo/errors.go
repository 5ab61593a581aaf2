package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for the edges of a run. The integrators and force models
// never return errors; bad physical inputs surface as NaN or Inf.
var (
	// ErrUnknownIntegrator indicates an integrator name with no registered stepper.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrUnknownModel indicates a model name that is neither freefall nor wing.
	ErrUnknownModel = errors.New("dynamo: unknown model")

	// ErrUnknownPreset indicates a preset name missing for the model.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")

	// ErrUnknownParam indicates a parameter name the model does not expose.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("dynamo: unknown output format")

	// ErrInvalidConfig indicates a run configuration rejected before stepping.
	ErrInvalidConfig = errors.New("dynamo: invalid run configuration")
)

// ConfigError wraps ErrInvalidConfig with the offending field.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
