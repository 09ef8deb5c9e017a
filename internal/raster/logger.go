package raster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records; Enabled returns false so formatting is skipped.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the renderer. By default nothing is
// logged. Passing nil restores the silent default. Safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: per-render setup (workers, seed, resolver)
//   - [slog.LevelInfo]: render start/finish and periodic row progress
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current renderer logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
