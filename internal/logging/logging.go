// Package logging builds the zap logger shared by the CLI, the terminal UI
// and the library packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zapcore.WarnLevel

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 5
	maxAgeDays = 30
)

// Options configures New.
type Options struct {
	// Level is a zap level name. Empty means DefaultLevel.
	Level string

	// File, when set, receives JSON logs at Level with size-based rotation.
	File string

	// Console receives human-readable logs. Nil means stderr.
	Console io.Writer
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// New builds a logger from opts. The returned close function flushes and
// releases the log file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleConfig := encoderConfig
	consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.AddSync(console), level),
	}

	var rotator *lumberjack.Logger
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel))
	closeFn := func() error {
		_ = logger.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}

// FileOnly builds a logger that writes only to the log file, or a no-op
// logger when file is empty. The terminal UI uses it so log lines do not
// corrupt the screen.
func FileOnly(level, file string) (*zap.Logger, func() error, error) {
	if file == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	return New(Options{Level: level, File: file, Console: io.Discard})
}
