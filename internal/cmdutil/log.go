// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the stderr logger shared by a run. quiet keeps only
// errors; verbose enables debug timings. quiet wins when both are set.
func NewLogger(dst io.Writer, quiet, verbose bool) *log.Logger {
	lvl := log.InfoLevel
	switch {
	case quiet:
		lvl = log.ErrorLevel
	case verbose:
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(dst, log.Options{
		Prefix: "motifmark",
		Level:  lvl,
	})
}
