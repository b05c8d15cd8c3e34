package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table formats columnar listings using tabwriter.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	started bool
}

// NewTable creates a table that writes to w with the given column headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		w:       tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		headers: headers,
	}
}

// AddRow appends a data row. Missing values are filled with empty strings.
func (t *Table) AddRow(values ...string) {
	if !t.started {
		t.started = true
		t.writeRow(t.headers)
		underline := make([]string, len(t.headers))
		for i, h := range t.headers {
			underline[i] = strings.Repeat("-", len(h))
		}
		t.writeRow(underline)
	}

	cells := make([]string, len(t.headers))
	copy(cells, values)
	t.writeRow(cells)
}

// Render flushes the table. Must be called after all AddRow calls.
func (t *Table) Render() error {
	return t.w.Flush()
}

func (t *Table) writeRow(cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, cell)
	}
	fmt.Fprintln(t.w)
}
