package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes the finished report to one stream and diagnostics to
// another. The report itself is never styled.
type Printer struct {
	out io.Writer
	err io.Writer

	styleError lipgloss.Style
	styleHint  lipgloss.Style
	styleName  lipgloss.Style
}

// NewPrinter returns a Printer. Colours are applied to errw only when it
// is a terminal.
func NewPrinter(out, errw io.Writer) *Printer {
	r := lipgloss.NewRenderer(errw)
	return &Printer{
		out:        out,
		err:        errw,
		styleError: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // red bold
		styleHint:  r.NewStyle().Foreground(lipgloss.Color("245")),            // gray
		styleName:  r.NewStyle().Foreground(lipgloss.Color("39")),             // cyan
	}
}

// Report writes the report text exactly as generated.
func (p *Printer) Report(text string) error {
	_, err := io.WriteString(p.out, text)
	return err
}

// Error prints a one-line error message.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.err, "%s %s\n", p.styleError.Render("error:"), err)
}

// Reports prints the list of valid report names.
func (p *Printer) Reports(names []string) {
	styled := make([]string, len(names))
	for i, n := range names {
		styled[i] = p.styleName.Render(n)
	}
	fmt.Fprintf(p.err, "%s %s\n", p.styleHint.Render("available reports:"), strings.Join(styled, ", "))
}

// Hint prints a secondary guidance line.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.err, p.styleHint.Render(msg))
}
