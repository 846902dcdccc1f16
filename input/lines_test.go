package input

import (
	"strings"
	"testing"
)

func TestLineBufferSplitsPartialWrites(t *testing.T) {
	var b lineBuffer
	b.write([]byte("1 2"))
	if b.ready() {
		t.Fatal("ready before newline")
	}
	b.write([]byte("\n3 4\n5"))
	var got []string
	for b.ready() {
		line, eof := b.next()
		if eof {
			t.Fatal("unexpected eof")
		}
		got = append(got, line)
		if !b.hasLine() {
			break
		}
	}
	want := []string{"1 2\n", "3 4\n"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if b.ready() {
		t.Fatal("ready with only an unterminated tail")
	}

	b.eof = true
	if line, eof := b.next(); eof || line != "5" {
		t.Fatalf("tail = %q, eof=%v; want \"5\", false", line, eof)
	}
	if _, eof := b.next(); !eof {
		t.Fatal("eof not reported after tail")
	}
}

func TestLineBufferOverlongLine(t *testing.T) {
	var b lineBuffer
	b.write([]byte(strings.Repeat("x", MaxLineLength+10)))
	if !b.ready() {
		t.Fatal("overlong run should be ready")
	}
	line, _ := b.next()
	if len(line) != MaxLineLength {
		t.Fatalf("len = %d, want %d", len(line), MaxLineLength)
	}
	if len(b.data) != 10 {
		t.Fatalf("remaining = %d, want 10", len(b.data))
	}
}
