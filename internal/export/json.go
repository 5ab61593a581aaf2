package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/aerosim/internal/sim"
)

type JSONWriter struct {
	w      io.Writer
	indent string
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, indent: "  "}
}

type runDocument struct {
	Model string `json:"model"`
	Steps int    `json:"steps"`
	Run   any    `json:"run"`
}

func (j *JSONWriter) WriteFreeFall(r *sim.FreeFallResult) error {
	return j.encode(runDocument{Model: "freefall", Steps: len(r.Records) - 1, Run: r})
}

func (j *JSONWriter) WriteWing(r *sim.WingResult) error {
	return j.encode(runDocument{Model: "wing", Steps: len(r.Records), Run: r})
}

func (j *JSONWriter) encode(doc runDocument) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", j.indent)
	return enc.Encode(doc)
}
