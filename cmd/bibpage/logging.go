package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the diagnostic logger written to stderr.
// Quiet keeps errors only; verbose enables debug logs with timestamps.
func newLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	level := log.WarnLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "bibpage",
	})
}
