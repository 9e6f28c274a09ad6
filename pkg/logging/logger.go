package logging

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: production zap wrapped with otelzap so
// log lines carry trace and span ids when a span is active.
func New(environment string) (*otelzap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	if environment != "production" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zapLogger, err := config.Build()

	if err != nil {
		return nil, err
	}

	return otelzap.New(zapLogger), nil
}
