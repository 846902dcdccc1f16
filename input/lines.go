package input

import "bytes"

// MaxLineLength bounds how many bytes are held while waiting for a newline.
// A longer run is returned as one line, which then fails to parse and is
// dropped by the caller.
const MaxLineLength = 64 << 10

// lineBuffer accumulates raw reads and splits them into lines.
type lineBuffer struct {
	data []byte
	eof  bool
}

// write appends freshly read bytes.
func (b *lineBuffer) write(p []byte) {
	b.data = append(b.data, p...)
}

// hasLine reports whether a complete (or overlong) line is buffered.
func (b *lineBuffer) hasLine() bool {
	return bytes.IndexByte(b.data, '\n') >= 0 || len(b.data) >= MaxLineLength
}

// ready reports whether next can return without more input.
func (b *lineBuffer) ready() bool {
	return b.hasLine() || b.eof
}

// next returns the next line including its newline. After end of stream
// a trailing unterminated line is returned first, then eof == true.
// next must only be called when ready is true.
func (b *lineBuffer) next() (line string, eof bool) {
	if i := bytes.IndexByte(b.data, '\n'); i >= 0 {
		return b.take(i + 1), false
	}
	if len(b.data) >= MaxLineLength {
		return b.take(MaxLineLength), false
	}
	if len(b.data) > 0 {
		return b.take(len(b.data)), false
	}
	return "", true
}

func (b *lineBuffer) take(n int) string {
	line := string(b.data[:n])
	b.data = append(b.data[:0], b.data[n:]...)
	return line
}
