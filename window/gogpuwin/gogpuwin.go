// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuwin is the native window backend, built on gogpu.
//
// Frames drawn by the viewer loop are software frames. Present stages a copy
// under a mutex; the gogpu draw callback uploads the latest staged frame
// through a ggcanvas.Canvas and renders it straight to the window surface.
//
// gogpu must own the main goroutine, so Window implements pointview.Runner:
//
//	win, _ := window.OpenByName("gogpu", opts)
//	err := pointview.Run(win, func() error { return loop.Run(ctx) })
//
// Importing the package registers the backend as "gogpu" with priority 100.
package gogpuwin

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pointview"
	"github.com/gogpu/pointview/window"
)

// Name is the registry name of this backend.
const Name = "gogpu"

// eventQueue is the capacity of the event channel. Key and resize
// callbacks never block the window thread; overflow is dropped.
const eventQueue = 64

func init() {
	window.Register(Name, 100, func(opts window.Options) (pointview.Window, error) {
		return New(opts)
	}, available)
}

// available reports whether a display server is reachable. Platforms with a
// native compositor always have one.
func available() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "android":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Window is a gogpu application window.
type Window struct {
	app    *gogpu.App
	width  int
	height int

	events chan pointview.Event

	mu     sync.Mutex
	staged *image.RGBA
	closed bool

	// Owned by the draw callback.
	canvas       *ggcanvas.Canvas
	lastW, lastH int
}

var (
	_ pointview.Window = (*Window)(nil)
	_ pointview.Runner = (*Window)(nil)
)

// New creates the application window. The window appears when Run starts.
func New(opts window.Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("gogpuwin: invalid size %dx%d", opts.Width, opts.Height)
	}
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(opts.Title).
		WithSize(opts.Width, opts.Height))

	w := &Window{
		app:    app,
		width:  opts.Width,
		height: opts.Height,
		lastW:  opts.Width,
		lastH:  opts.Height,
		events: make(chan pointview.Event, eventQueue),
	}

	app.OnDraw(w.draw)
	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape || key == gpucontext.KeyQ {
			w.send(pointview.QuitEvent())
		}
	})
	// The canvas is registered with the app and released by app.Run.
	app.OnClose(func() {
		w.send(pointview.QuitEvent())
	})
	return w, nil
}

// Size returns the requested window size.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Events returns the window event channel.
func (w *Window) Events() <-chan pointview.Event {
	return w.events
}

// NewSurface creates a software surface whose frames are shown by the
// next draw callback.
func (w *Window) NewSurface(width, height int) (pointview.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gogpuwin: invalid surface size %dx%d", width, height)
	}
	return &surface{Frame: pointview.NewFrame(width, height), win: w}, nil
}

// Run starts fn on a new goroutine and runs the gogpu application on the
// calling goroutine. When fn returns the application quits; when the
// application ends first, a quit event is delivered so fn can finish. Run
// returns after both have ended.
func (w *Window) Run(fn func() error) error {
	done := make(chan error, 1)
	go func() {
		err := fn()
		w.app.Quit()
		done <- err
	}()

	runErr := w.app.Run()
	if runErr != nil {
		runErr = fmt.Errorf("gogpuwin: %w", runErr)
	}
	w.send(pointview.QuitEvent())
	return errors.Join(runErr, <-done)
}

// Close stops delivering events and asks the application to quit.
// It is idempotent.
func (w *Window) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.events)
	w.mu.Unlock()

	w.app.Quit()
	return nil
}

// send queues ev without blocking.
func (w *Window) send(ev pointview.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- ev:
	default:
		pointview.Logger().Debug("gogpuwin: event dropped", slog.String("kind", ev.Kind.String()))
	}
}

func (w *Window) stage(f *pointview.Frame) {
	w.mu.Lock()
	w.staged = f.CopyTo(w.staged)
	w.mu.Unlock()
}

// draw runs on the window thread once per displayed frame.
func (w *Window) draw(dc *gogpu.Context) {
	width, height := dc.Width(), dc.Height()
	if width <= 0 || height <= 0 {
		return
	}
	if width != w.lastW || height != w.lastH {
		w.lastW, w.lastH = width, height
		w.send(pointview.ResizeEvent(width, height))
	}

	log := pointview.Logger()
	if w.canvas == nil {
		provider := w.app.GPUContextProvider()
		if provider == nil {
			return
		}
		canvas, err := ggcanvas.New(provider, width, height)
		if err != nil {
			log.Warn("gogpuwin: create canvas", slog.Any("err", err))
			return
		}
		w.canvas = canvas
	}
	if cw, ch := w.canvas.Size(); cw != width || ch != height {
		if err := w.canvas.Resize(width, height); err != nil {
			log.Warn("gogpuwin: resize canvas", slog.Any("err", err))
		}
	}

	w.mu.Lock()
	err := w.canvas.Draw(func(cc *gg.Context) {
		cc.ClearWithColor(gg.Black)
		if w.staged != nil {
			cc.DrawImage(gg.ImageBufFromImage(w.staged), 0, 0)
		}
	})
	w.mu.Unlock()
	if err != nil {
		log.Warn("gogpuwin: draw", slog.Any("err", err))
		return
	}

	sw, sh := dc.SurfaceSize()
	if err := w.canvas.RenderDirect(dc.RenderTarget().SurfaceView(), sw, sh); err != nil {
		log.Warn("gogpuwin: render", slog.Any("err", err))
	}
}

type surface struct {
	*pointview.Frame
	win *Window
}

func (s *surface) Present() error {
	s.win.stage(s.Frame)
	return nil
}
