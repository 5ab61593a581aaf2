package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/aerosim/internal/sim"
)

type CSVWriter struct {
	w io.Writer
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

func (c *CSVWriter) WriteFreeFall(r *sim.FreeFallResult) error {
	w := csv.NewWriter(c.w)

	if err := w.Write([]string{"step", "time", "z", "v"}); err != nil {
		return err
	}
	for _, rec := range r.Records {
		row := []string{
			strconv.Itoa(rec.Step),
			formatFloat(rec.Time),
			formatFloat(rec.Position),
			formatFloat(rec.Velocity),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (c *CSVWriter) WriteWing(r *sim.WingResult) error {
	w := csv.NewWriter(c.w)

	if err := w.Write([]string{"t", "z", "v", "ad"}); err != nil {
		return err
	}
	for _, rec := range r.Records {
		row := []string{
			formatClock(rec.Time),
			formatFloat(rec.Position),
			formatFloat(rec.Velocity),
			formatFloat(rec.AngleDeg),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
