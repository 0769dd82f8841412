package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fjglira/docgen/internal/domain"
	"github.com/fjglira/docgen/internal/generator"
)

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

// palette renders styles for one output. Colors are only emitted when the
// writer is a terminal.
type palette struct {
	error   lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		error:   r.NewStyle().Bold(true).Foreground(colorError),
		warning: r.NewStyle().Bold(true).Foreground(colorWarning),
		success: r.NewStyle().Foreground(colorSuccess),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (p palette) severity(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return p.error.Render("error")
	case domain.SeverityWarning:
		return p.warning.Render("warning")
	default:
		return string(s)
	}
}

func printDiagnostics(w io.Writer, diags []domain.Diagnostic) {
	p := newPalette(w)
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s\n", p.severity(d.Severity), d.String())
	}
}

func printSummary(w io.Writer, result *generator.Result, dryRun bool) {
	p := newPalette(w)
	changed := len(result.Written)
	verb := "updated"
	if dryRun {
		changed = len(result.Pending)
		verb = "would be updated"
	}

	summary := fmt.Sprintf("%d document(s) processed, %d %s", result.Documents, changed, verb)
	switch n := result.ErrorCount(); {
	case n > 0:
		fmt.Fprintln(w, p.error.Render(fmt.Sprintf("%s, %d error(s)", summary, n)))
	case changed > 0:
		fmt.Fprintln(w, p.warning.Render(summary))
	default:
		fmt.Fprintln(w, p.success.Render(summary))
	}
}

func printOutline(w io.Writer, headings []domain.Heading, entries []domain.TOCEntry) {
	for _, line := range outlineLines(headings, entries, newPalette(w).muted) {
		fmt.Fprintln(w, line)
	}
}
