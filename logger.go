package ui

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// loggerSetter is implemented by components that hold their own logger,
// such as an Engine and the font and texture registries it owns.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

var (
	sinksMu sync.Mutex
	sinks   = make(map[loggerSetter]struct{})
)

// SetLogger configures the logger for ui and all its sub-packages.
// By default, ui produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically
// and hands it to every live Engine.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ui:
//   - [slog.LevelDebug]: element rebuilds, modal buffer transitions, resource loads
//   - [slog.LevelInfo]: engine lifecycle
//   - [slog.LevelWarn]: missing resources drawn as placeholders, isolated draw errors
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	sinksMu.Lock()
	defer sinksMu.Unlock()
	for s := range sinks {
		s.SetLogger(l)
	}
}

// Logger returns the current logger used by ui.
// Sub-packages receive it through their WithLogger options.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// attachLogger hands the current logger to s and keeps it updated by
// later SetLogger calls until detachLogger.
func attachLogger(s loggerSetter) {
	sinksMu.Lock()
	defer sinksMu.Unlock()
	sinks[s] = struct{}{}
	s.SetLogger(Logger())
}

func detachLogger(s loggerSetter) {
	sinksMu.Lock()
	defer sinksMu.Unlock()
	delete(sinks, s)
}
