// Package logging provides the dispatcher's structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger. It writes to Stderr (stdout is
// reserved for tool output and usage text) and standardizes common keys
// ("error" -> "err"). With debug false the logger discards everything:
// the CLI stays quiet by default because its real output is the wrapped
// tool's own streams.
func New(debug bool) *slog.Logger {
	if !debug {
		return NewNop()
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
