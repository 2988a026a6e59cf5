package testutils

import (
	"bytes"
	"log/slog"
)

// SetupTestLogger creates a slog.Logger that writes to a bytes.Buffer at
// DEBUG level. Returns the logger and the buffer for assertions on the
// emitted lines.
func SetupTestLogger() (*slog.Logger, *bytes.Buffer) {
	var logBuf bytes.Buffer
	handler := slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &logBuf
}
