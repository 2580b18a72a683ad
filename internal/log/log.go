package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

// CreateHandler creates a [slog.Handler] writing to w from level and format
// names.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level := GetLevel(logLevel)

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case LogfmtFormat:
		return newCharmLogger(w, level, charmlog.LogfmtFormatter), nil
	case TextFormat, "":
		return newCharmLogger(w, level, charmlog.TextFormatter), nil
	}

	return nil, fmt.Errorf("unknown log format %q", logFormat)
}

func newCharmLogger(w io.Writer, level slog.Level, f charmlog.Formatter) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		Formatter:       f,
		ReportTimestamp: true,
	})
}

// GetLevel maps a level name to a [slog.Level]. Unknown names map to info.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
