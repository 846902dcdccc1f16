// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"

	"github.com/gogpu/pointview"
)

// imageEventQueue is the capacity of the Image event channel.
const imageEventQueue = 16

// Image is an in-memory window. Surfaces are plain frames and Present keeps
// a copy of the latest one. Events are injected with Send.
//
// Image is safe for concurrent use: the loop presents on one goroutine
// while tests or a signal handler call Send and Snapshot on another.
type Image struct {
	mu       sync.Mutex
	width    int
	height   int
	events   chan pointview.Event
	last     *image.RGBA
	presents int
	snapshot string
	closed   bool
}

var _ pointview.Window = (*Image)(nil)

// NewImage creates an in-memory window of opts.Width×opts.Height.
func NewImage(opts Options) *Image {
	opts = opts.normalize()
	return &Image{
		width:    opts.Width,
		height:   opts.Height,
		events:   make(chan pointview.Event, imageEventQueue),
		snapshot: opts.Snapshot,
	}
}

// Size returns the size the window was created with.
func (w *Image) Size() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Events returns the injected event channel. It is closed by Close.
func (w *Image) Events() <-chan pointview.Event {
	return w.events
}

// NewSurface creates a frame-backed surface.
func (w *Image) NewSurface(width, height int) (pointview.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window: invalid surface size %dx%d", width, height)
	}
	return &imageSurface{Frame: pointview.NewFrame(width, height), win: w}, nil
}

// Send queues ev without blocking. It reports false when the window is
// closed or the queue is full. A resize event also updates Size.
func (w *Image) Send(ev pointview.Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	select {
	case w.events <- ev:
		if ev.Kind == pointview.EventResize && ev.Width > 0 && ev.Height > 0 {
			w.width, w.height = ev.Width, ev.Height
		}
		return true
	default:
		return false
	}
}

// Snapshot returns a copy of the last presented frame, or nil before the
// first Present.
func (w *Image) Snapshot() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return nil
	}
	img := image.NewRGBA(w.last.Rect)
	copy(img.Pix, w.last.Pix)
	return img
}

// Presents returns how many frames were presented.
func (w *Image) Presents() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presents
}

// Close closes the event channel and writes the snapshot file when one was
// requested. It is idempotent.
func (w *Image) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	close(w.events)
	if w.snapshot == "" || w.last == nil {
		return nil
	}
	return writePNG(w.snapshot, w.last)
}

func (w *Image) present(f *pointview.Frame) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = f.CopyTo(w.last)
	w.presents++
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("window: snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("window: snapshot: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("window: snapshot: %w", err)
	}
	return nil
}

type imageSurface struct {
	*pointview.Frame
	win *Image
}

func (s *imageSurface) Present() error {
	s.win.present(s.Frame)
	return nil
}
