// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds a JSON structured logger writing to out.
// The level string accepts debug/info/warn/error; anything else means info.
func NewLogger(out io.Writer, level string) *slog.Logger {
	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(h)
}

// Default returns a JSON logger on stdout at info level.
func Default() *slog.Logger {
	return NewLogger(os.Stdout, "info")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
