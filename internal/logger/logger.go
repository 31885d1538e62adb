package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"listingadmin/internal/config"
)

// Logger provides leveled logging (info/warning/error) to stdout and, when
// a log directory is configured, to app.log in JSON.
type Logger struct {
	slog *slog.Logger
	file *os.File
	mu   *sync.Mutex
}

// NewLogger creates a Logger and ensures the log directory exists.
func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogDirectory == "" {
		return New(slog.NewTextHandler(os.Stdout, opts)), nil
	}

	if err := os.MkdirAll(cfg.LogDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filepath.Join(cfg.LogDirectory, "app.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(slog.NewJSONHandler(io.MultiWriter(os.Stdout, file), opts))
	l.file = file
	return l, nil
}

// New wraps an existing slog handler. Used by tests and by NewLogger.
func New(h slog.Handler) *Logger {
	return &Logger{slog: slog.New(h), mu: &sync.Mutex{}}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Info writes a formatted info-level log entry.
func (l *Logger) Info(format string, v ...any) {
	l.log(slog.LevelInfo, format, v...)
}

// Warning writes a formatted warning-level log entry.
func (l *Logger) Warning(format string, v ...any) {
	l.log(slog.LevelWarn, format, v...)
}

// Error writes a formatted error-level log entry.
func (l *Logger) Error(format string, v ...any) {
	l.log(slog.LevelError, format, v...)
}

func (l *Logger) log(level slog.Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slog.Log(context.Background(), level, fmt.Sprintf(format, v...))
}

// With returns a child logger that always includes the given key-value pairs.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), file: l.file, mu: l.mu}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
