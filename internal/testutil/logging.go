package testutil

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// LogsEnabled reports whether HYA_TEST_LOGS=true is set, in which case
// harnesses dump captured logs into the test output.
func LogsEnabled() bool {
	return os.Getenv("HYA_TEST_LOGS") == "true"
}

// Logger returns a debug logger writing to the test log when LogsEnabled,
// and discarding everything otherwise.
func Logger(t *testing.T) *slog.Logger {
	t.Helper()
	if !LogsEnabled() {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
