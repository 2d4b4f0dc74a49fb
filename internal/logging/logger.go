// Package logging provides structured file logging for fieldops.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
	// With returns a new logger with additional key-value pairs.
	With(args ...any) Logger
	// Shutdown flushes any buffered logs and releases resources.
	Shutdown() error
}

// Config holds logging configuration.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int
	Dir      string
	Command  string
}

// loggerImpl is the charmbracelet/log based implementation.
type loggerImpl struct {
	clogger *clog.Logger
	file    *os.File
}

// Init initializes a new Logger with the given configuration.
// If cfg.Enabled is false, returns a no-op logger. It creates the log
// directory, applies file rotation, opens a per-run log file, and
// configures the underlying logger with JSON formatting.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("logging: log directory cannot be empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	// Rotate before creating the new file so the cap holds.
	if err := rotate(cfg.Dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	command := cfg.Command
	if command == "" {
		command = "fieldops"
	}
	fname := fmt.Sprintf("fieldops_%s_PID%d_%s.log",
		time.Now().Format("20060102_150405"),
		os.Getpid(),
		strings.ReplaceAll(command, " ", "_"))
	path := filepath.Join(cfg.Dir, fname)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	clogger := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
	})
	clogger.SetFormatter(clog.JSONFormatter)
	clogger = clogger.With("pid", os.Getpid(), "command", command)

	return &loggerImpl{clogger: clogger, file: f}, nil
}

// parseLevel converts a string level to clog.Level.
func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) {
	l.clogger.Debug(msg, args...)
}

func (l *loggerImpl) Info(msg string, args ...any) {
	l.clogger.Info(msg, args...)
}

func (l *loggerImpl) Warn(msg string, args ...any) {
	l.clogger.Warn(msg, args...)
}

func (l *loggerImpl) Error(msg string, args ...any) {
	l.clogger.Error(msg, args...)
}

func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{clogger: l.clogger.With(args...), file: l.file}
}

func (l *loggerImpl) Shutdown() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// noopLogger discards all output.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

// Noop returns a logger that discards everything.
func Noop() Logger {
	return noopLogger{}
}
