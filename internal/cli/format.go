package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printer writes status lines. Success goes to out; warnings and errors go
// to errOut. Each stream is colored only when it is a terminal. Lines carry
// no prefix so the text stays stable for scripts matching it.
type printer struct {
	out    io.Writer
	errOut io.Writer

	successColor *color.Color
	warningColor *color.Color
	errorColor   *color.Color
}

// newPrinter creates a printer for the given streams.
func newPrinter(out, errOut io.Writer) *printer {
	return &printer{
		out:          out,
		errOut:       errOut,
		successColor: colorFor(out, color.FgGreen, color.Bold),
		warningColor: colorFor(errOut, color.FgYellow, color.Bold),
		errorColor:   colorFor(errOut, color.FgRed, color.Bold),
	}
}

// colorFor returns a color that is enabled only when w is a terminal.
func colorFor(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if shouldColorize(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func shouldColorize(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Success prints a success message
func (p *printer) Success(msg string) {
	_, _ = p.successColor.Fprintln(p.out, msg)
}

// Warning prints a warning message
func (p *printer) Warning(msg string) {
	_, _ = p.warningColor.Fprintln(p.errOut, msg)
}

// Error prints an error message
func (p *printer) Error(msg string) {
	_, _ = p.errorColor.Fprintln(p.errOut, msg)
}

// Warningf formats and prints a warning message.
func (p *printer) Warningf(format string, args ...any) {
	p.Warning(fmt.Sprintf(format, args...))
}
