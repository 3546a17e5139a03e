// Package logging builds the zap logger shared by the engines and CLI.
package logging

import (
	"go.uber.org/zap"
)

// New returns a sugared logger. Verbose enables development-style output at
// debug level; otherwise output is production JSON at info level.
func New(verbose bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Engines accept a logger at
// construction and fall back to this when given nil.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
