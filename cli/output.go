package cli

import (
	"fmt"
	"io"
	"os"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	dim    = "\033[2m"
)

// ColorPrinter provides colored status output.
type ColorPrinter struct {
	out      io.Writer
	err      io.Writer
	useColor bool
}

// NewColorPrinter creates a printer writing to out and err. Colors are only
// used when out is a terminal.
func NewColorPrinter(out, err io.Writer) *ColorPrinter {
	return &ColorPrinter{out: out, err: err, useColor: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (p *ColorPrinter) colorize(color, text string) string {
	if !p.useColor {
		return text
	}
	return color + text + reset
}

// Success prints a green success message with checkmark
func (p *ColorPrinter) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", p.colorize(green, "✓"), fmt.Sprintf(format, args...))
}

// Error prints a red error message with X mark
func (p *ColorPrinter) Error(format string, args ...interface{}) {
	fmt.Fprintf(p.err, "%s %s\n", p.colorize(red, "✗"), fmt.Sprintf(format, args...))
}

// Warning prints a yellow warning message
func (p *ColorPrinter) Warning(format string, args ...interface{}) {
	fmt.Fprintf(p.err, "%s %s\n", p.colorize(yellow, "!"), fmt.Sprintf(format, args...))
}

// Info prints a blue info message
func (p *ColorPrinter) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", p.colorize(blue, "→"), fmt.Sprintf(format, args...))
}

// Dim returns dimmed text
func (p *ColorPrinter) Dim(text string) string {
	return p.colorize(dim, text)
}
