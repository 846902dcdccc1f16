package pointview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// State is the lifecycle state of a Loop.
type State uint8

const (
	// Running: input open, tick active.
	Running State = iota

	// Draining: input reached end of stream, tick disabled, window still
	// responsive to resize and quit.
	Draining

	// Terminated: resources released, no further transitions.
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Draining:
		return "Draining"
	case Terminated:
		return "Terminated"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Loop is the viewer's event loop. It owns the point buffer, the color ramp,
// the view state and the input channel, and is driven from one goroutine.
//
// Every iteration presents exactly one frame, then blocks until the next
// window event or tick, then handles that event and everything else already
// pending before presenting again.
type Loop struct {
	win      Window
	in       InputChannel
	buf      *Buffer
	ramp     Ramp
	view     ViewState
	renderer *Renderer
	snapshot []Slot

	state    State
	interval time.Duration
	ticker   *time.Ticker
	tick     <-chan time.Time // nil when no tick is due
}

// NewLoop creates a loop in the Running state for win and in.
//
// The view starts at win.Size(), or 640×480 when the window reports no size.
// An error creating the first surface is wrapped and returned; the caller
// should treat it as a fatal display failure.
func NewLoop(win Window, in InputChannel, opts ...Option) (*Loop, error) {
	if win == nil {
		return nil, ErrNilWindow
	}
	if in == nil {
		return nil, ErrNilInput
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	view := DefaultViewState()
	view.Thickness = o.thickness
	if w, h := win.Size(); w > 0 && h > 0 {
		view.Width, view.Height = w, h
	}

	s, err := win.NewSurface(view.Width, view.Height)
	if err != nil {
		return nil, fmt.Errorf("pointview: create surface: %w", err)
	}

	return &Loop{
		win:      win,
		in:       in,
		buf:      NewBuffer(o.capacity),
		ramp:     NewRamp(o.capacity),
		view:     view,
		renderer: NewRenderer(s),
		snapshot: make([]Slot, 0, o.capacity),
		state:    Running,
		interval: o.interval,
	}, nil
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Buffer returns the point buffer. Callers must not append to it while Run
// is executing.
func (l *Loop) Buffer() *Buffer {
	return l.buf
}

// Ramp returns the color ramp.
func (l *Loop) Ramp() Ramp {
	return l.ramp
}

// View returns the current view state.
func (l *Loop) View() ViewState {
	return l.view
}

// Run drives the loop until a quit event, a closed event channel or ctx
// cancellation. Quitting is a normal outcome and returns nil; the only error
// is ErrTerminated when the loop already finished.
func (l *Loop) Run(ctx context.Context) error {
	if l.state == Terminated {
		return ErrTerminated
	}
	if l.state == Running && l.tick == nil {
		l.ticker = time.NewTicker(l.interval)
		l.tick = l.ticker.C
	}

	log := Logger()
	log.Info("pointview: loop started",
		slog.Int("width", l.view.Width),
		slog.Int("height", l.view.Height),
		slog.Int("capacity", l.buf.Cap()))

	events := l.win.Events()
	for {
		l.present()

		select {
		case <-ctx.Done():
			l.terminate("context done")
			return nil
		case ev, ok := <-events:
			if !ok {
				l.terminate("event channel closed")
				return nil
			}
			l.Handle(ev)
		case <-l.tick:
			l.Tick()
		}

		l.drainPending(events)
		if l.state == Terminated {
			return nil
		}
	}
}

// drainPending handles every event and tick that is already waiting,
// without blocking.
func (l *Loop) drainPending(events <-chan Event) {
	for l.state != Terminated {
		select {
		case ev, ok := <-events:
			if !ok {
				l.terminate("event channel closed")
				return
			}
			l.Handle(ev)
		case <-l.tick:
			l.Tick()
		default:
			return
		}
	}
}

// Handle applies one window event.
func (l *Loop) Handle(ev Event) {
	if l.state == Terminated {
		return
	}
	switch ev.Kind {
	case EventQuit:
		l.terminate("quit")
	case EventResize:
		l.resize(ev.Width, ev.Height)
	}
}

// Tick reads every line that is ready without blocking and appends the
// well-formed ones to the buffer. It returns the number of points appended.
// Outside the Running state it does nothing.
func (l *Loop) Tick() int {
	if l.state != Running {
		return 0
	}
	log := Logger()
	n := 0
	for l.in.Ready() {
		line, eof := l.in.ReadLine()
		if eof {
			l.endOfInput()
			break
		}
		p, ok := ParsePoint(line)
		if !ok {
			log.Debug("pointview: discarded record", slog.String("line", strings.TrimSpace(line)))
			continue
		}
		l.buf.Append(p)
		n++
	}
	return n
}

// Present draws the current buffer once. Run calls it every iteration.
func (l *Loop) Present() error {
	l.snapshot = l.buf.AppendSlots(l.snapshot[:0])
	return l.renderer.Present(l.snapshot, l.ramp, l.view)
}

func (l *Loop) present() {
	if err := l.Present(); err != nil {
		Logger().Warn("pointview: present failed", slog.Any("err", err))
	}
}

func (l *Loop) resize(width, height int) {
	log := Logger()
	if width <= 0 || height <= 0 {
		log.Debug("pointview: ignoring empty resize", slog.Int("width", width), slog.Int("height", height))
		return
	}
	s, err := l.win.NewSurface(width, height)
	if err != nil {
		log.Warn("pointview: recreate surface", slog.Int("width", width), slog.Int("height", height), slog.Any("err", err))
		return
	}
	closeSurface(l.renderer.Surface())
	l.renderer.SetSurface(s)
	l.view.Width, l.view.Height = width, height
	log.Debug("pointview: resized", slog.Int("width", width), slog.Int("height", height))
}

// endOfInput moves Running to Draining: the input is closed for good and
// the tick stops, since no further points can arrive.
func (l *Loop) endOfInput() {
	if err := l.in.Close(); err != nil {
		Logger().Warn("pointview: close input", slog.Any("err", err))
	}
	l.stopTicker()
	l.state = Draining
	Logger().Info("pointview: end of input", slog.Int("points", l.buf.Len()), slog.String("state", l.state.String()))
}

// terminate releases everything best-effort and enters Terminated.
func (l *Loop) terminate(reason string) {
	prev := l.state
	l.state = Terminated
	l.stopTicker()

	var errs []error
	if prev == Running {
		errs = append(errs, l.in.Close())
	}
	errs = append(errs, closeSurfaceErr(l.renderer.Surface()), l.win.Close())
	if err := errors.Join(errs...); err != nil {
		Logger().Warn("pointview: release resources", slog.Any("err", err))
	}
	Logger().Info("pointview: loop terminated", slog.String("reason", reason), slog.String("from", prev.String()))
}

func (l *Loop) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
	l.tick = nil
}

func closeSurface(s Surface) {
	if err := closeSurfaceErr(s); err != nil {
		Logger().Warn("pointview: close surface", slog.Any("err", err))
	}
}

func closeSurfaceErr(s Surface) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
