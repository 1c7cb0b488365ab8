// Package logging builds the logr.Logger shared by the executables: zap
// development output on stderr, since stdout carries the JSON envelope.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger that prints V(n) lines for n <= verbosity, and a
// flush func to defer.
func New(name string, verbosity int) (logr.Logger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.DisableStacktrace = true

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, err
	}
	return zapr.NewLogger(zl).WithName(name), func() { _ = zl.Sync() }, nil
}
