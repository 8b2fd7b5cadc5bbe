// Package logging builds the zap logger used by the binary.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"dulko/internal/config"
)

// New returns a logger for cfg. Format "json" uses the production encoder,
// anything else the development console encoder. An empty File writes to
// stderr.
func New(cfg config.Log) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.Level)

	out := cfg.File
	if out == "" {
		out = "stderr"
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
