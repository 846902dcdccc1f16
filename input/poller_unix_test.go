//go:build unix

package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitPoller(t *testing.T, p *Poller) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !p.Ready() {
		if time.Now().After(deadline) {
			t.Fatal("poller never became ready")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPollerAssemblesPartialLines(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPoller(r)
	if err != nil {
		t.Fatalf("NewPoller: %v", err)
	}
	defer p.Close()

	if p.Ready() {
		t.Fatal("Ready on an empty pipe")
	}
	if _, err := w.Write([]byte("10 2")); err != nil {
		t.Fatal(err)
	}
	if p.Ready() {
		t.Fatal("Ready with half a line")
	}
	if _, err := w.Write([]byte("0\n30 40\n")); err != nil {
		t.Fatal(err)
	}
	waitPoller(t, p)
	if line, eof := p.ReadLine(); eof || line != "10 20\n" {
		t.Fatalf("ReadLine = %q, %v", line, eof)
	}
	if !p.Ready() {
		t.Fatal("second buffered line not ready")
	}
	if line, _ := p.ReadLine(); line != "30 40\n" {
		t.Fatalf("ReadLine = %q", line)
	}

	if _, err := w.Write([]byte("50 60")); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()
	waitPoller(t, p)
	if line, eof := p.ReadLine(); eof || line != "50 60" {
		t.Fatalf("tail = %q, %v", line, eof)
	}
	waitPoller(t, p)
	if _, eof := p.ReadLine(); !eof {
		t.Fatal("expected eof")
	}
}

func TestPollerRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	if err := os.WriteFile(path, []byte("1 2\n3 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	in := Open(f)
	if _, ok := in.(*Poller); !ok {
		t.Fatalf("Open returned %T, want *Poller", in)
	}
	defer in.Close()

	var lines []string
	for {
		if !in.Ready() {
			t.Fatal("regular file should always be ready")
		}
		line, eof := in.ReadLine()
		if eof {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) != 2 || lines[0] != "1 2\n" || lines[1] != "3 4\n" {
		t.Fatalf("lines = %q", lines)
	}
}

func TestPollerCloseIdempotent(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	p, err := NewPoller(r)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if p.Ready() {
		t.Fatal("Ready after Close")
	}
}

func TestOpenNil(t *testing.T) {
	if in := Open(nil); in != nil {
		t.Fatalf("Open(nil) = %v, want nil", in)
	}
}
