// Package logger holds the process-wide structured logger.
//
// Log output goes to stderr so it never interleaves with the console menus on
// stdout. An optional rotating file can be added with Config.File.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// L is the global sugared logger.
	L *zap.SugaredLogger
	// Z is the global structured logger.
	Z *zap.Logger
)

// Rotation defaults for the optional log file
const (
	defaultMaxSizeMB  = 64
	defaultMaxBackups = 3
	defaultMaxAgeDays = 7
)

func init() {
	// Silent until Init is called, so library use and tests stay quiet.
	Z = zap.NewNop()
	L = Z.Sugar()
}

// Config controls level and destinations.
type Config struct {
	Level      string // debug, info, warn, error
	File       string // Optional log file; empty logs to stderr only
	MaxSize    int    // Megabytes per file before rotation
	MaxBackups int    // Rotated files to keep
	MaxAge     int    // Days to keep rotated files
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level: %s", level)
	}
}

// Init builds the global logger from cfg.
func Init(cfg Config) error {
	return InitWithWriter(cfg, os.Stderr)
}

// InitWithWriter is Init with an explicit console writer.
func InitWithWriter(cfg Config, console io.Writer) error {
	zapLevel, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	output := console
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    positiveOr(cfg.MaxSize, defaultMaxSizeMB),
			MaxBackups: positiveOr(cfg.MaxBackups, defaultMaxBackups),
			MaxAge:     positiveOr(cfg.MaxAge, defaultMaxAgeDays),
			Compress:   true,
		}
		output = io.MultiWriter(console, fileWriter)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(output),
		zapLevel,
	)

	Z = zap.New(core, zap.AddCallerSkip(1))
	L = Z.Sugar()
	return nil
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	if Z != nil {
		_ = Z.Sync()
	}
}

// Debugf logs at debug level.
func Debugf(template string, args ...any) { L.Debugf(template, args...) }

// Infof logs at info level.
func Infof(template string, args ...any) { L.Infof(template, args...) }

// Warnf logs at warn level.
func Warnf(template string, args ...any) { L.Warnf(template, args...) }

// Errorf logs at error level.
func Errorf(template string, args ...any) { L.Errorf(template, args...) }
