package metrics

import "github.com/san-kum/aerosim/internal/dynamo"

// ForModel returns a fresh metric set for the named model.
func ForModel(model string) []dynamo.Metric {
	switch model {
	case "freefall":
		return []dynamo.Metric{NewPeakSpeed(), NewSettling(), NewStability(0)}
	case "wing":
		return []dynamo.Metric{NewAmplitude(), NewPeakSpeed(), NewStability(0)}
	default:
		return []dynamo.Metric{NewStability(0)}
	}
}
