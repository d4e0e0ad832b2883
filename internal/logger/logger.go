// Package logger wraps zap logger construction for the application.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Logger wraps a zap.Logger instance.
type Logger struct {
	// Log is the underlying structured logger.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger. Call Init to replace it
// with a real one.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level ("Debug", "Info",
// "Warn", "Error") and installs it on the Logger.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}
