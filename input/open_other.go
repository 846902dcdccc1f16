//go:build !unix

package input

import (
	"os"

	"github.com/gogpu/pointview"
)

// Open returns a line source for f. A nil f yields a nil channel.
func Open(f *os.File) pointview.InputChannel {
	if f == nil {
		return nil
	}
	return NewReader(f)
}
