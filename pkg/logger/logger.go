// pkg/logger/logger.go

package logger

import (
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log *zap.Logger
)

// SetLogger installs the process-wide logger and mirrors it into the zap and
// otelzap globals so context loggers resolve to the same sinks.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the global logger instance, initializing a fallback if needed.
func L() *zap.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		l = NewFallbackLogger()
		SetLogger(l)
	}
	return l
}

// Sync flushes any buffered log entries. Should be called before the
// application exits. Sync errors on stdout/stderr sinks are expected on
// some platforms and are ignored.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	if log == nil {
		return nil
	}
	return log.Sync()
}
