// Package engineio provides the engine's structured logging, kept
// strictly off stdout since stdout is reserved for UCI protocol
// replies.
package engineio

import "go.uber.org/zap"

// NewLogger builds a zap logger writing to stderr only.
func NewLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		// Logging setup failing isn't worth crashing the engine over;
		// fall back to a no-op logger instead.
		return zap.NewNop()
	}
	return logger
}
