package pointview

import "fmt"

// EventKind identifies a window event.
type EventKind uint8

const (
	// EventNone is the zero event and is ignored by the Loop.
	EventNone EventKind = iota

	// EventQuit asks the viewer to terminate: window close gesture,
	// Escape or Q.
	EventQuit

	// EventResize reports a new drawable size in pixels.
	EventResize
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventResize:
		return "Resize"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is delivered by a Window on its Events channel.
type Event struct {
	Kind EventKind

	// Width and Height are set for EventResize.
	Width, Height int
}

// QuitEvent returns an EventQuit event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// ResizeEvent returns an EventResize event for a width×height surface.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// Window is a display surface provider and event source.
//
// Implementations live in package window and its sub-packages. The Loop
// receives events from Events, draws to surfaces created by NewSurface, and
// calls Close exactly once when it terminates.
type Window interface {
	// Size returns the initial drawable size in pixels.
	Size() (width, height int)

	// Events returns the channel of window events. A closed channel is
	// treated as a quit request.
	Events() <-chan Event

	// NewSurface creates a drawable surface of the given size. The Loop
	// calls it at startup and after every resize.
	NewSurface(width, height int) (Surface, error)

	// Close releases the window. It is idempotent.
	Close() error
}

// Runner is implemented by windows whose event pump must own the calling
// goroutine, typically the process main thread. Run starts fn on another
// goroutine, pumps window events until fn returns or the window is closed,
// and returns fn's error.
type Runner interface {
	Run(fn func() error) error
}

// Run calls fn with the window's preferred threading: through w.Run when w
// is a Runner, directly otherwise.
func Run(w Window, fn func() error) error {
	if r, ok := w.(Runner); ok {
		return r.Run(fn)
	}
	return fn()
}
