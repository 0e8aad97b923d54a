package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger for one App. It does not touch the global
// logger, so several Apps can run side by side in tests. Unknown levels
// fall back to info and any format other than "json" means text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
