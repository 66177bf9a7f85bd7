package cmd

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a structured logger writing to stderr, tagged with an
// id for this run. Debug messages are shown only when verbose is set.
func newLogger(verbose bool) (logr.Logger, func(), error) {
	zapCfg := zap.NewProductionConfig()
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	log := zapr.NewLogger(zl).WithValues("runID", uuid.NewString())
	return log, func() { _ = zl.Sync() }, nil
}
