// Package ui prints symbol-prefixed, colored status lines for the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// SetColor turns colored output on or off for the whole process.
func SetColor(enabled bool) {
	color.Enable = enabled
}

// Printer writes status lines to a single writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Success prints a green check line.
func (p *Printer) Success(format string, args ...any) {
	p.line(color.Green, "✓", format, args...)
}

// Info prints a cyan arrow line.
func (p *Printer) Info(format string, args ...any) {
	p.line(color.Cyan, "→", format, args...)
}

// Warn prints a yellow warning line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(color.Yellow, "⚠", format, args...)
}

// Error prints a red cross line.
func (p *Printer) Error(format string, args ...any) {
	p.line(color.Red, "✗", format, args...)
}

// Header prints a bold section title preceded by a blank line.
func (p *Printer) Header(format string, args ...any) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, color.Bold.Sprintf(format, args...))
}

// Plain prints an indented, uncolored line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, "  "+format+"\n", args...)
}

func (p *Printer) line(c color.Color, symbol, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", c.Sprint(symbol), fmt.Sprintf(format, args...))
}
