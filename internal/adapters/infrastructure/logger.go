package infrastructure

import (
	"log/slog"

	"weatherbot.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps a slog logger. A nil logger means slog.Default().
func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLoggerAdapter{logger: logger}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.logger.Debug(msg, toArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.logger.Info(msg, toArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.logger.Warn(msg, toArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.logger.Error(msg, toArgs(fields)...)
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	return args
}

// TeeLogger fans every entry out to several loggers
type TeeLogger []ports.Logger

func (t TeeLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Debug(msg, fields...)
	}
}

func (t TeeLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Info(msg, fields...)
	}
}

func (t TeeLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Warn(msg, fields...)
	}
}

func (t TeeLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Error(msg, fields...)
	}
}
