package logger

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// New creates the application logger. Status lines go to stderr so that a
// child command's stdout stays clean. Quiet raises the level to Error,
// which keeps timeout and failure lines visible while suppressing routine
// status output.
func New(quiet bool) *slog.Logger {
	return NewWithWriter(os.Stderr, quiet)
}

// NewWithWriter is New with an explicit sink, used by tests.
func NewWithWriter(w io.Writer, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("2006/01/02 15:04:05"))
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
