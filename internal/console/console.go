// Package console prints leveled, styled messages and prompts the user.
package console

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
)

// Printer writes every message to a single stream so ordering is preserved.
// Styling is downsampled to what the writer supports.
type Printer struct {
	out io.Writer
}

// New creates a Printer writing to out. A nil out means os.Stdout.
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Writer returns the underlying stream.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes msg as is.
func (p *Printer) Print(msg string) {
	_, _ = lipgloss.Fprintln(p.out, msg)
}

// Point writes msg as a progress bullet.
func (p *Printer) Point(msg string) {
	_, _ = lipgloss.Fprintln(p.out, pointStyle.Render("==>")+" "+msg)
}

// Error writes msg as an error line.
func (p *Printer) Error(msg string) {
	_, _ = lipgloss.Fprintln(p.out, errorStyle.Render("error:")+" "+errorText.Render(msg))
}

// Bold returns s styled bold, for embedding in a Print line.
func (p *Printer) Bold(s string) string {
	return boldStyle.Render(s)
}
