package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the process logger. Production mode emits JSON, development
// mode emits colored console output with stack traces on warnings.
func New(level string, development bool) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = atomicLevel

	return cfg.Build()
}
