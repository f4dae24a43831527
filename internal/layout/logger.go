package layout

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    atomic.Pointer[zap.Logger]
)

// Logger returns the logger used to trace layout runs, a no-op logger
// unless SetLogger installed one.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger installs l for subsequent layout runs. A nil l restores the
// no-op logger. Safe to call concurrently with running layouts.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
