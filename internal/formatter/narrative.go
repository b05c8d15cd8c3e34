package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Narrative styles. lipgloss degrades these to plain text when the output is
// not a terminal.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// nextSteps is the fixed guidance block closing every narrative report.
var nextSteps = []string{
	"Collect the metrics listed above",
	"Compare measurements against the stated thresholds",
	"Revise principle confidence or parameters where a hypothesis is refuted",
}

// Narrative writes the report as headed, ordered prose sections.
func (r *Report) Narrative(w io.Writer) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("System Analysis: %s", r.System)))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Hypotheses"))
	b.WriteString("\n")
	if len(r.Hypotheses) == 0 {
		b.WriteString("  (no principles declared)\n")
	}
	for i, h := range r.Hypotheses {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, h.Principle, h.Description)
		if h.Test != "" {
			fmt.Fprintf(&b, "   %s %s\n", labelStyle.Render("test:"), h.Test)
		}
		if h.Metric != "" {
			fmt.Fprintf(&b, "   %s %s (threshold: %s)\n", labelStyle.Render("metric:"), h.Metric, h.Threshold)
		}
		if len(h.Unresolved) > 0 {
			fmt.Fprintf(&b, "   %s\n", warnStyle.Render(
				fmt.Sprintf("unresolved placeholders: %s", strings.Join(h.Unresolved, ", "))))
		}
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Verification Checklist"))
	b.WriteString("\n")
	for i, item := range r.Checklist {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Next Steps"))
	b.WriteString("\n")
	for i, step := range nextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
