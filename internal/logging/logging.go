// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns the root logger. Production mode emits structured JSON;
// otherwise a human-readable console writer is used.
func Setup(production bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if production {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stdout
		w.TimeFormat = time.RFC3339
	})
	return zerolog.New(cw).With().Timestamp().Logger()
}
