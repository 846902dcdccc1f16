//go:build unix

package input

import (
	"log/slog"
	"os"

	"github.com/gogpu/pointview"
)

// Open returns a line source for f, preferring a Poller and falling back
// to a Reader when the descriptor cannot be polled. A nil f yields nil.
func Open(f *os.File) pointview.InputChannel {
	if f == nil {
		return nil
	}
	p, err := NewPoller(f)
	if err == nil {
		return p
	}
	pointview.Logger().Debug("input: poll unavailable, using reader", slog.Any("err", err))
	return NewReader(f)
}
