package pointview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Enabled reports false, so callers skip
// building attributes for disabled levels.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var (
	quiet  = slog.New(silent{})
	active atomic.Pointer[slog.Logger]
)

func init() {
	active.Store(quiet)
}

// SetLogger routes the logs of pointview and its sub-packages (input,
// window and its backends, plot3d) to l. Nothing is logged until it is
// called; nil restores that silence. It may be called while a Loop runs.
//
// Messages are prefixed with the emitting package. The loop logs:
//   - debug "pointview: discarded record" with line, the trimmed record
//   - debug "pointview: resized" and "ignoring empty resize" with width, height
//   - info "pointview: loop started" with width, height, capacity
//   - info "pointview: end of input" with points, state
//   - info "pointview: loop terminated" with reason, from (the prior state)
//   - warn "pointview: present failed", "release resources" with err
//
// input warns with err when a read or poll failure ends the stream;
// window logs backend on open; plot3d logs path, markers and segments for
// each exported file.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = quiet
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger. Sub-packages log through it.
func Logger() *slog.Logger {
	return active.Load()
}
