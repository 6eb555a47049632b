// Package logging builds the file-backed logger. The TUI owns the terminal,
// so log output must never go to stdout/stderr; everything is written to the
// configured file, and an empty file path disables logging entirely.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing JSON lines to file at the given level.
// An empty file yields a no-op logger.
func New(level, file string) (*zap.Logger, error) {
	if file == "" {
		return zap.NewNop(), nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(levelOrDefault(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
