package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents log severity
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DEBUG
	case "INFO", "info":
		return INFO
	case "WARN", "warn":
		return WARN
	case "ERROR", "error":
		return ERROR
	default:
		return INFO
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Field is a key-value pair for structured logging
type Field = zap.Field

// F is a shorthand for creating a Field
func F(key string, value interface{}) Field {
	if err, ok := value.(error); ok {
		return zap.NamedError(key, err)
	}
	return zap.Any(key, value)
}

// Config holds logger configuration
type Config struct {
	Level      Level  // Minimum log level
	FilePath   string // Path to log file
	MaxSize    int64  // Max size in bytes before rotation (default: 10MB)
	MaxAge     int    // Max age in days (default: 7)
	MaxBackups int    // Max number of backup files (default: 5)
	Console    bool   // Enable console logging
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	logPath := filepath.Join(home, ".ironproject", "logs", "ironproject.log")

	return Config{
		Level:      INFO,
		FilePath:   logPath,
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxAge:     7,
		MaxBackups: 5,
		Console:    false, // Off by default, stderr would tear the TUI
	}
}

// Logger wraps a zap logger together with the file it owns
type Logger struct {
	zl   *zap.Logger
	file *rotatingFile // nil for derived loggers
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Init initializes the global logger
func Init(config Config) error {
	var err error
	once.Do(func() {
		globalLogger, err = New(config)
	})
	return err
}

// New creates a new logger instance
func New(config Config) (*Logger, error) {
	l := &Logger{}
	level := zap.NewAtomicLevelAt(config.Level.zapLevel())

	var cores []zapcore.Core
	if config.FilePath != "" {
		file, err := openRotatingFile(config)
		if err != nil {
			return nil, err
		}
		l.file = file

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), file, level))
	}

	if config.Console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level))
	}

	if len(cores) == 0 {
		l.zl = zap.NewNop()
		return l, nil
	}

	l.zl = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return l, nil
}

// WithFields creates a new logger with preset fields
func (l *Logger) WithFields(fields ...Field) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With(fields...)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.zl.Debug(msg, fields...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.zl.Info(msg, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.zl.Warn(msg, fields...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) {
	if l == nil {
		return
	}
	l.zl.Error(msg, fields...)
}

// Close flushes buffered entries and closes the log file
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	_ = l.zl.Sync()
	if l.file != nil {
		if err := l.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
	}
	return nil
}

// Global logger functions. They skip one extra frame so the caller
// recorded in the entry is the code that called logger.Info, not this file.

func global() *zap.Logger {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.zl.WithOptions(zap.AddCallerSkip(1))
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	if zl := global(); zl != nil {
		zl.Debug(msg, fields...)
	}
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	if zl := global(); zl != nil {
		zl.Info(msg, fields...)
	}
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	if zl := global(); zl != nil {
		zl.Warn(msg, fields...)
	}
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	if zl := global(); zl != nil {
		zl.Error(msg, fields...)
	}
}

// WithFields creates a new logger with preset fields using the global logger.
// It returns nil (a valid no-op logger) when Init has not been called.
func WithFields(fields ...Field) *Logger {
	return globalLogger.WithFields(fields...)
}

// Close closes the global logger. A later Init starts a new one.
func Close() error {
	l := globalLogger
	globalLogger = nil
	once = sync.Once{}
	return l.Close()
}

