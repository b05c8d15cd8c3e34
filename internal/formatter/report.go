// Package formatter renders analysis reports. Rendering is a pure projection
// of the synthesizer's output: it never reorders or alters hypotheses.
package formatter

import (
	"fmt"
	"io"

	"github.com/echopraxium/syslang/internal/types"
)

// Format selects the rendering of a report.
type Format string

const (
	// FormatNarrative is the human-readable prose rendering.
	FormatNarrative Format = "text"

	// FormatStructured is the machine-readable JSON rendering.
	FormatStructured Format = "json"
)

// Checklist is the fixed verification checklist included in every report.
var Checklist = []string{
	"Define measurable metrics for each hypothesis",
	"Establish baseline measurements",
	"Test under stress conditions",
	"Validate refutability conditions",
	"Document edge cases and limitations",
}

// Report is the full content of one analysis run.
type Report struct {
	// System is the analyzed system's name.
	System string `json:"system"`

	// Hypotheses are the synthesized hypotheses, in declaration order.
	Hypotheses []types.Hypothesis `json:"hypotheses"`

	// Checklist is the fixed verification checklist.
	Checklist []string `json:"checklist"`

	// Principles are the declared principle names, in declaration order.
	Principles []string `json:"principles"`
}

// New assembles a report from a model and its synthesized hypotheses.
func New(m *types.SystemModel, hypotheses []types.Hypothesis) *Report {
	principles := make([]string, 0, len(m.Principles))
	for _, p := range m.Principles {
		principles = append(principles, p.Name)
	}
	return &Report{
		System:     m.Name,
		Hypotheses: hypotheses,
		Checklist:  Checklist,
		Principles: principles,
	}
}

// Render writes the report in the requested format.
func (r *Report) Render(w io.Writer, f Format) error {
	switch f {
	case FormatNarrative:
		return r.Narrative(w)
	case FormatStructured:
		return r.Structured(w)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
