// Package output prints diagnostics to stderr. Stdout belongs to the status
// line, so nothing here ever writes to it.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger receives reports about probes that failed and were replaced by
// their default value.
type Logger interface {
	VerboseLog(format string, a ...any)
}

// Discard drops everything.
var Discard Logger = discard{}

type discard struct{}

func (discard) VerboseLog(string, ...any) {}

// UI writes colored diagnostics and respects verbose mode.
type UI struct {
	Verbose bool
	ErrOut  io.Writer

	verbosePrefix string
	warningPrefix string
}

// New creates a UI writing to errOut (stderr when nil).
func New(errOut io.Writer, verbose, noColor bool) *UI {
	if errOut == nil {
		errOut = os.Stderr
	}
	vp := color.New(color.FgHiBlue)
	wp := color.New(color.FgHiYellow)
	if noColor {
		vp.DisableColor()
		wp.DisableColor()
	}
	return &UI{
		Verbose:       verbose,
		ErrOut:        errOut,
		verbosePrefix: vp.Sprint("  →"),
		warningPrefix: wp.Sprint("⚠"),
	}
}

func (u *UI) VerboseLog(format string, a ...any) {
	if u.Verbose {
		_, _ = fmt.Fprintf(u.ErrOut, "%s %s\n", u.verbosePrefix, fmt.Sprintf(format, a...))
	}
}

func (u *UI) Warning(format string, a ...any) {
	_, _ = fmt.Fprintf(u.ErrOut, "%s %s\n", u.warningPrefix, fmt.Sprintf(format, a...))
}
