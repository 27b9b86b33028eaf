// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package aurora

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. Enabled returns false so callers
// skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(nopHandler{})
	loggerPtr.Store(l)
}

// SetLogger configures the logger for aurora and its sub-packages.
// By default aurora produces no log output. Pass nil to restore the silent
// default. Safe for concurrent use.
//
// Log levels used by aurora:
//   - [slog.LevelDebug]: focus moves, stack transitions, resize traces
//   - [slog.LevelInfo]: lifecycle events (driver selected, fonts loaded)
//   - [slog.LevelWarn]: degraded paths (missing optional fonts)
//   - [slog.LevelError]: driver failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current aurora logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
