package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/aerosim/internal/sim"
)

// TextWriter emits the line-oriented progress format:
//
//	Initial: z = 0, v = 0
//	Step 1, time = 0.1, z = 0.049..., v = 0.979...
//	t: 0, z: 0, v: 0, ad: 2.864...
type TextWriter struct {
	w io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (t *TextWriter) WriteFreeFall(r *sim.FreeFallResult) error {
	bw := bufio.NewWriter(t.w)
	for _, rec := range r.Records {
		if rec.Step == 0 {
			fmt.Fprintf(bw, "Initial: z = %s, v = %s\n", formatFloat(rec.Position), formatFloat(rec.Velocity))
			continue
		}
		fmt.Fprintf(bw, "Step %d, time = %s, z = %s, v = %s\n",
			rec.Step, formatFloat(rec.Time), formatFloat(rec.Position), formatFloat(rec.Velocity))
	}
	return bw.Flush()
}

func (t *TextWriter) WriteWing(r *sim.WingResult) error {
	bw := bufio.NewWriter(t.w)
	for _, rec := range r.Records {
		fmt.Fprintf(bw, "t: %s, z: %s, v: %s, ad: %s\n",
			formatClock(rec.Time), formatFloat(rec.Position), formatFloat(rec.Velocity), formatFloat(rec.AngleDeg))
	}
	return bw.Flush()
}
