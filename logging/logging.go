package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level     slog.Level
	AddSource bool
}

// Level reads a log level written as DEBUG, INFO, WARN or ERROR.
//
//nolint:gochecknoglobals // shared stateless accessor.
var Level = config.Enum(slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError)

// LoadConfig reads a LoggerConfig from the section at path: "level" with the
// Level accessor (default INFO) and "add_source" as a bool (default false).
func LoadConfig(cfg config.Handle, path string) (LoggerConfig, error) {
	level, err := config.GetOr(cfg, config.JoinPath(path, "level"), Level, slog.LevelInfo)
	if err != nil {
		return LoggerConfig{}, err
	}

	addSource, err := config.GetOr(cfg, config.JoinPath(path, "add_source"), config.Bool, false)
	if err != nil {
		return LoggerConfig{}, err
	}

	return LoggerConfig{Level: level, AddSource: addSource}, nil
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
func NewLogger(cfg LoggerConfig, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   cfg.AddSource,
		Level:       cfg.Level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
// WARNING is accepted for WARN. Empty or unknown names yield INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
