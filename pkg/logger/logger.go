package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger собирает основной логгер приложения. Уровень задаётся
// переменной окружения LOG_LEVEL (debug по умолчанию).
func NewLogger() *zap.Logger {
	level := zap.DebugLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zap.ParseAtomicLevel(raw); err == nil {
			level = parsed.Level()
		}
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return logger
}
