package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/aerosim/internal/sim"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// Plot renders one series. Series shorter than two points render as "".
func Plot(series []float64, caption string, height, width int) string {
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

func PlotFreeFall(r *sim.FreeFallResult) string {
	z := make([]float64, len(r.Records))
	v := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		z[i] = rec.Position
		v[i] = rec.Velocity
	}
	return joinPlots(
		Plot(z, "z (position) vs step", plotHeight, plotWidth),
		Plot(v, "v (velocity) vs step", plotHeight, plotWidth),
	)
}

func PlotWing(r *sim.WingResult) string {
	z := make([]float64, len(r.Records))
	ad := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		z[i] = rec.Position
		ad[i] = rec.AngleDeg
	}
	return joinPlots(
		Plot(z, "z (deflection) vs step", plotHeight, plotWidth),
		Plot(ad, "angle of attack (deg) vs step", plotHeight, plotWidth),
	)
}

func joinPlots(plots ...string) string {
	out := make([]string, 0, len(plots))
	for _, p := range plots {
		if p != "" {
			out = append(out, graphStyle.Render(p))
		}
	}
	return strings.Join(out, "\n")
}
