// Package logging is an ambient structured-logging helper for hosts that
// wrap the analysis core: a production-configured zap.Logger, raised to
// Debug level by a verbose flag. The CLI builds the same configuration
// inline and the batch runner accepts any *zap.Logger; neither imports
// this package. Analysis passes never import it either: spec's
// concurrency model keeps them pure CPU walks with no logging of their
// own.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-configured zap.Logger, raised to Debug level
// when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Nop returns a logger that discards everything, for tests and library
// callers that have not opted into logging.
func Nop() *zap.Logger { return zap.NewNop() }
