package utils

import (
	"log"

	"clinicbook/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration. The level follows
// LOG_LEVEL from config; production gets JSON output, development gets
// colored console output.
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(configuredLevel())

	var err error
	Logger, err = cfg.Build(zap.Fields(zap.String("service", "clinicbook")))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

func configuredLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.AppConfig.LogLevel)); err != nil {
		if config.IsProduction() {
			return zapcore.InfoLevel
		}
		return zapcore.DebugLevel
	}
	return level
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
