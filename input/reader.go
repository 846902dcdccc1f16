package input

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/gogpu/pointview"
)

// readerQueue is how many complete lines the pump may read ahead.
const readerQueue = 1024

var _ pointview.InputChannel = (*Reader)(nil)

// Reader adapts an io.Reader into a non-blocking line source.
//
// A pump goroutine reads lines and sends them on a buffered channel; the
// channel is closed at end of stream. Ready and ReadLine must be called from
// one goroutine.
type Reader struct {
	src   io.Reader
	lines chan string
	done  chan struct{}

	pending    string
	hasPending bool
	eof        bool
	closed     bool
	closeOnce  sync.Once
}

// NewReader starts reading r in the background.
// If r is an io.Closer, Close closes it.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{
		src:   r,
		lines: make(chan string, readerQueue),
		done:  make(chan struct{}),
	}
	go rd.pump(bufio.NewReaderSize(r, 64<<10))
	return rd
}

func (r *Reader) pump(br *bufio.Reader) {
	defer close(r.lines)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			select {
			case r.lines <- line:
			case <-r.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				pointview.Logger().Warn("input: read failed, treating as end of input", slog.Any("err", err))
			}
			return
		}
	}
}

// Ready reports whether ReadLine can return without blocking.
func (r *Reader) Ready() bool {
	if r.closed {
		return false
	}
	if r.hasPending || r.eof {
		return true
	}
	select {
	case line, ok := <-r.lines:
		if !ok {
			r.eof = true
		} else {
			r.pending, r.hasPending = line, true
		}
		return true
	default:
		return false
	}
}

// ReadLine returns the next line, or eof == true once the source is
// exhausted. Called without a preceding successful Ready it blocks until a
// line or end of stream arrives.
func (r *Reader) ReadLine() (line string, eof bool) {
	if r.hasPending {
		line, r.pending, r.hasPending = r.pending, "", false
		return line, false
	}
	if r.eof || r.closed {
		return "", true
	}
	line, ok := <-r.lines
	if !ok {
		r.eof = true
		return "", true
	}
	return line, false
}

// Close stops the pump and closes the source when it is an io.Closer.
// A pump blocked inside a Read of a non-closable source exits when that
// Read returns.
func (r *Reader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		r.closed = true
		close(r.done)
		if c, ok := r.src.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}
