package logger

import (
	"fmt"

	"github.com/wichananm65/kriuke-snack/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger from cfg. The development preset is used for the
// "dev" and "development" environments.
func New(cfg config.LoggerConfig, appEnv string) (*zap.Logger, error) {
	var zc zap.Config
	if appEnv == "dev" || appEnv == "development" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger level %q: %w", cfg.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	zc.DisableCaller = cfg.DisableCaller
	zc.DisableStacktrace = cfg.DisableStacktrace
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}

// Must is New for main packages.
func Must(cfg config.LoggerConfig, appEnv string) *zap.Logger {
	l, err := New(cfg, appEnv)
	if err != nil {
		panic(err)
	}
	return l
}
