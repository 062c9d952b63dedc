package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits
const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 7
)

// setupLogging returns a file-only logger when debug is set, otherwise a no-op logger
// The terminal owns stdout and stderr while the editor runs, so nothing is written there
func setupLogging(debug bool, path string) (*zap.Logger, func()) {
	if !debug {
		return zap.NewNop(), func() {}
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.DebugLevel,
	)
	logger := zap.New(core, zap.AddCaller())

	return logger, func() {
		_ = logger.Sync()
		_ = rotator.Close()
	}
}
