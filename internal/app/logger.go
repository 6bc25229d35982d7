package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger for one App. The global default
// logger is left alone. Unknown levels fall back to info; NewConfig has
// already rejected them by the time an App exists.
func newLogger(level, format string, outW io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
