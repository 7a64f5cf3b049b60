// Package logging configures the zerolog logger shared by kate-sync
// components.
//
// Logs always go to stderr through a console writer. Standard output is
// reserved for the fetch notice, git's own output, and `kate-sync plan`.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// App is the value of the "app" field attached to every log line.
const App = "kate-sync"

// New builds a console logger writing to w. With verbose set the level is
// debug, otherwise info. Components receive the logger explicitly.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", App).Logger()
}
