// File: pkg/ui/logger.go
package ui

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostics logger. Verbose lowers the level to debug,
// quiet raises it to errors only.
func NewLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	level := log.WarnLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "cppkg",
		Level:  level,
	})
}
