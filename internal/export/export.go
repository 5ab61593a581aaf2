// Package export writes run records in the formats consumed downstream.
package export

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/aerosim/internal/dynamo"
	"github.com/san-kum/aerosim/internal/sim"
)

type Writer interface {
	WriteFreeFall(r *sim.FreeFallResult) error
	WriteWing(r *sim.WingResult) error
}

// New returns the writer for format: text, csv or json.
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{w: w}, nil
	case "csv":
		return &CSVWriter{w: w}, nil
	case "json":
		return &JSONWriter{w: w, indent: "  "}, nil
	default:
		return nil, fmt.Errorf("%w: %q", dynamo.ErrUnknownFormat, format)
	}
}

// formatFloat prints the shortest decimal that round-trips, without an
// exponent. Infinities print as inf and -inf, NaN as NaN.
func formatFloat(v float64) string {
	return formatBits(v, 64)
}

// formatClock prints a value held by a float32 clock at float32 precision.
func formatClock(v float64) string {
	return formatBits(v, 32)
}

func formatBits(v float64, bitSize int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}
