package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New builds the root logger. Debug mode (GIN_MODE=debug) gets the console
// encoder; every other mode logs JSON.
func New(level, ginMode string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(strings.TrimSpace(ginMode), "debug") {
		cfg = zap.NewDevelopmentConfig()
	}

	if strings.TrimSpace(level) != "" {
		lvl, err := zap.ParseAtomicLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		cfg.Level = lvl
	}

	return cfg.Build()
}

// OrNop keeps constructors tolerant of a nil logger.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
