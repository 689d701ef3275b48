package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger.
var (
	Logger *zap.Logger
	mu     sync.Mutex
)

// InitLogger builds the global logger. format is "json" or "text".
func InitLogger(level, format string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "text" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}

	mu.Lock()
	Logger = l
	mu.Unlock()
	return nil
}

// GetLogger returns the global logger, falling back to a production logger.
func GetLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if Logger == nil {
		Logger, _ = zap.NewProduction()
	}
	return Logger
}

// WithComponent adds a component name to the logger.
func WithComponent(component string) *zap.Logger {
	return GetLogger().With(zap.String("component", component))
}

func Sync() {
	_ = GetLogger().Sync()
}
