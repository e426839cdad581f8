package logger

import (
	"context"
)

// Logger abstracts the logging backend so components depend on this
// interface instead of the concrete zap implementation.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// WithContext returns a logger carrying context fields.
	WithContext(ctx context.Context) Logger

	// WithFields returns a logger with extra fields attached.
	WithFields(fields ...Field) Logger

	// Sync flushes any buffered log entries
	Sync() error
}

// Field is a single key/value pair in a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Helper constructors for Field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
