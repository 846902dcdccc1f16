//go:build unix

package input

import (
	"errors"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"github.com/gogpu/pointview"
)

// maxReadsPerReady bounds how long one Ready call may keep reading a
// producer that streams without newlines.
const maxReadsPerReady = 64

var _ pointview.InputChannel = (*Poller)(nil)

// Poller is a goroutine-free line source over a file descriptor.
//
// Ready asks poll(2) with a zero timeout whether the descriptor is readable
// and, if so, performs one read of whatever is available. Bytes without a
// trailing newline are kept until the rest of the line arrives.
type Poller struct {
	f      *os.File
	fd     int
	chunk  []byte
	buf    lineBuffer
	closed bool
}

// NewPoller wraps f. The file is closed by Close.
func NewPoller(f *os.File) (*Poller, error) {
	if f == nil {
		return nil, pointview.ErrNilInput
	}
	p := &Poller{
		f:     f,
		fd:    int(f.Fd()),
		chunk: make([]byte, 32<<10),
	}
	fds := []unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLIN}}
	if _, err := unix.Poll(fds, 0); err != nil && !errors.Is(err, unix.EINTR) {
		return nil, err
	}
	if fds[0].Revents&unix.POLLNVAL != 0 {
		return nil, unix.EBADF
	}
	return p, nil
}

// Ready reports whether ReadLine will return without blocking.
func (p *Poller) Ready() bool {
	if p.closed {
		return false
	}
	for range maxReadsPerReady {
		if p.buf.ready() {
			return true
		}
		readable, err := p.poll(0)
		if err != nil {
			p.fail(err)
			return true
		}
		if !readable {
			return false
		}
		p.fill()
	}
	return p.buf.ready()
}

// ReadLine returns the next buffered line. After end of stream any
// unterminated remainder is returned first, then eof == true. Called while
// not ready it blocks in poll(2) until a line or end of stream arrives.
func (p *Poller) ReadLine() (line string, eof bool) {
	for !p.closed && !p.buf.ready() {
		if _, err := p.poll(-1); err != nil {
			p.fail(err)
			break
		}
		p.fill()
	}
	if p.closed && !p.buf.ready() {
		return "", true
	}
	return p.buf.next()
}

// Close closes the underlying file. It is safe to call more than once.
func (p *Poller) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.f.Close()
}

func (p *Poller) poll(timeout int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeout)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, err
		}
		if n == 0 {
			return false, nil
		}
		if fds[0].Revents&unix.POLLNVAL != 0 {
			return false, unix.EBADF
		}
		// POLLHUP and POLLERR are reported as readable; the read
		// observes end of stream or the error.
		return true, nil
	}
}

// fill performs exactly one read.
func (p *Poller) fill() {
	n, err := unix.Read(p.fd, p.chunk)
	if n > 0 {
		p.buf.write(p.chunk[:n])
	}
	switch {
	case err == nil && n == 0:
		p.buf.eof = true
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
	case err != nil:
		p.fail(err)
	}
}

func (p *Poller) fail(err error) {
	pointview.Logger().Warn("input: poll failed, treating as end of input", slog.Any("err", err))
	p.buf.eof = true
}
