package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger.
// A nil w writes to Stderr, keeping diagnostics out of the artifacts the
// tool produces. The "error" key is shortened to "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForDebug picks the debug logger when enabled and the no-op one otherwise.
func ForDebug(debug bool) *slog.Logger {
	if debug {
		return New(nil, slog.LevelDebug)
	}
	return NewNop()
}
