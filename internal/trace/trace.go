// Package trace provides the launcher's verbose tracing channel. Tracing is
// silent unless explicitly enabled; the launcher must not pollute the
// child's inherited stderr during normal runs.
package trace

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const envVerbose = "STAGEHAND_VERBOSE"

var logger = zerolog.New(io.Discard)

// Init enables tracing when verbose is true or STAGEHAND_VERBOSE is set to
// anything other than "0". Output goes to stderr, human-formatted when
// stderr is a terminal and JSON otherwise.
func Init(verbose bool) {
	if !verbose {
		v := os.Getenv(envVerbose)
		if v == "" || v == "0" {
			return
		}
	}
	var w io.Writer = os.Stderr
	if term.IsTerminal(int(os.Stderr.Fd())) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// Log returns the package logger.
func Log() *zerolog.Logger {
	return &logger
}
