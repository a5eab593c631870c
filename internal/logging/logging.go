// Package logging sets up the optional debug log. When debug mode is off
// every logger is a no-op; nothing is written anywhere.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a file-backed logger under dir/logs when debug is enabled,
// otherwise a no-op logger.
func New(debug bool, dir string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logsDir, "foundry.log")}
	cfg.ErrorOutputPaths = []string{filepath.Join(logsDir, "foundry.log")}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
