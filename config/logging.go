package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// InitLogging configures the default slog logger to write to the log file
// in the cache directory at the configured level. Logging must never go to
// the terminal once the TUI owns it, so a broken log file silently discards
// output instead.
func InitLogging(cfg *Config) slog.Level {
	level := ParseLogLevel(cfg.Logging.Level)

	var w io.Writer
	file, err := os.OpenFile(GetLogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		w = io.Discard
	} else {
		w = file
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return level
}

// ParseLogLevel maps a config string to a slog level, defaulting to error.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
