// Package logger writes diagnostics to a rotated log file. Nothing is
// written to the console; with no file configured every call is a no-op.
package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much is logged.
type Config struct {
	Level      string // debug, info, warn, error
	File       string // empty disables logging
	MaxSize    int    // MB before rotation
	MaxBackups int
}

var (
	mu     sync.RWMutex
	sugar  = zap.NewNop().Sugar()
	closer func() error
)

// Init replaces the global logger. It may be called again to reconfigure.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer()
		closer = nil
	}

	if cfg.File == "" {
		sugar = zap.NewNop().Sugar()
		return nil
	}

	if cfg.MaxSize == 0 {
		cfg.MaxSize = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		parseLevel(cfg.Level),
	)
	sugar = zap.New(core).Sugar()
	closer = rotator.Close
	return nil
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	_ = sugar.Sync()
	sugar = zap.NewNop().Sugar()
	if closer == nil {
		return nil
	}
	err := closer()
	closer = nil
	return err
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(format string, args ...any) { current().Debugf(format, args...) }
func Info(format string, args ...any)  { current().Infof(format, args...) }
func Warn(format string, args ...any)  { current().Warnf(format, args...) }
func Error(format string, args ...any) { current().Errorf(format, args...) }
