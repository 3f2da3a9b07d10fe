package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger for the given environment.
// "production" yields a JSON logger at info level; anything else a colored
// development logger at debug level. A non-empty level overrides the default.
func New(env, level string) (*zap.Logger, error) {
	if env == "production" {
		cfg := zap.NewProductionConfig()
		// Include caller and stacktrace on error in production
		cfg.EncoderConfig.TimeKey = "ts"
		lvl, err := parseLevel(level, zapcore.InfoLevel)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		return cfg.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	lvl, err := parseLevel(level, zapcore.DebugLevel)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build(zap.AddCaller())
}

func parseLevel(level string, fallback zapcore.Level) (zapcore.Level, error) {
	if level == "" {
		return fallback, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fallback, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
