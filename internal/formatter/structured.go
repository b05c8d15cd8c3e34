package formatter

import (
	"encoding/json"
	"fmt"
	"io"
)

// Structured writes the report as an indented JSON document.
func (r *Report) Structured(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
