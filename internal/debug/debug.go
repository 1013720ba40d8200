// Package debug provides the runtime's opt-in diagnostic log. It is silent
// unless enabled through the LIBSW_DEBUG environment variable or Enable, and
// writes prefixed single-line messages to standard error, colored when that
// stream is a terminal.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	enabled atomic.Bool

	// output is swapped by tests; everything else logs to stderr.
	output io.Writer = os.Stderr

	tag = color.New(color.FgMagenta)
)

func init() {
	if os.Getenv("LIBSW_DEBUG") != "" {
		enabled.Store(true)
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		tag.DisableColor()
	}
}

// Enable turns diagnostic logging on.
func Enable() { enabled.Store(true) }

// Disable turns diagnostic logging off.
func Disable() { enabled.Store(false) }

// Enabled reports whether diagnostic logging is on.
func Enabled() bool { return enabled.Load() }

// SetOutput redirects the log to w. Tests use this to capture messages.
func SetOutput(w io.Writer) { output = w }

// Logf writes one formatted diagnostic line when logging is enabled.
func Logf(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	fmt.Fprintf(output, "%s %s\n", tag.Sprint("libsw:"), fmt.Sprintf(format, args...))
}
