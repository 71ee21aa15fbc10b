// Package logging provides structured logging over log/slog for the import
// planner and its CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is our wrapper around slog.Logger with component helpers.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level     string `json:"level"`      // debug, info, warn, error
	Format    string `json:"format"`     // text, json
	AddSource bool   `json:"add_source"` // whether to add source code information
}

// DefaultConfig is used when nothing is configured.
var DefaultConfig = Config{
	Level:  "info",
	Format: "text",
}

// Component names the subsystem emitting a record.
type Component string

func (c Component) LogValue() slog.Value {
	return slog.StringValue(string(c))
}

// ConfigFromEnv overrides DefaultConfig with LOG_LEVEL, LOG_FORMAT and
// LOG_ADD_SOURCE.
func ConfigFromEnv() Config {
	config := DefaultConfig

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}

	if addSource := os.Getenv("LOG_ADD_SOURCE"); addSource != "" {
		config.AddSource = strings.ToLower(addSource) == "true"
	}

	return config
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to w.
func New(config Config, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(config.Level),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithComponent creates a child logger with component context.
func (l *Logger) WithComponent(component Component) *Logger {
	return &Logger{Logger: l.With(slog.Any("component", component))}
}
