// Package termwin is a terminal window backend built on tcell.
//
// Each character cell shows two vertically stacked pixels using the upper
// half block rune, so a terminal of C columns and R rows is a C×2R pixel
// surface. The tty is opened directly, which leaves stdin free for point
// data.
//
// Importing the package registers the backend as "term" with priority 50.
package termwin

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pointview"
	"github.com/gogpu/pointview/window"
)

// Name is the registry name of this backend.
const Name = "term"

// halfBlock paints the top pixel in the foreground color and the bottom
// pixel in the background color.
const halfBlock = '▀'

const eventQueue = 64

func init() {
	window.Register(Name, 50, func(window.Options) (pointview.Window, error) {
		return New()
	}, available)
}

func available() bool {
	if runtime.GOOS == "windows" {
		return true
	}
	return os.Getenv("TERM") != "" && os.Getenv("TERM") != "dumb"
}

// Window drives a tcell screen.
type Window struct {
	screen    tcell.Screen
	events    chan pointview.Event
	done      chan struct{}
	closeOnce sync.Once
}

var _ pointview.Window = (*Window)(nil)

// New takes over the controlling terminal.
func New() (*Window, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termwin: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes screen and starts the event poller. It is used
// with tcell.NewSimulationScreen in tests.
func NewWithScreen(screen tcell.Screen) (*Window, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termwin: init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	w := &Window{
		screen: screen,
		events: make(chan pointview.Event, eventQueue),
		done:   make(chan struct{}),
	}
	go w.pollLoop()
	return w, nil
}

// Size returns the pixel size: columns by twice the rows.
func (w *Window) Size() (width, height int) {
	cols, rows := w.screen.Size()
	return cols, rows * 2
}

// Events returns the window event channel. It is closed once the screen is
// finalized.
func (w *Window) Events() <-chan pointview.Event {
	return w.events
}

// NewSurface creates a frame that Present maps onto terminal cells.
func (w *Window) NewSurface(width, height int) (pointview.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("termwin: invalid surface size %dx%d", width, height)
	}
	return &surface{Frame: pointview.NewFrame(width, height), screen: w.screen}, nil
}

// Close restores the terminal. It is idempotent.
func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		w.screen.Fini()
		<-w.done
	})
	return nil
}

// pollLoop forwards key and resize events until the screen is finalized.
// tcell captures Ctrl-C, so it is mapped to quit here.
func (w *Window) pollLoop() {
	defer close(w.done)
	defer close(w.events)

	for {
		event := w.screen.PollEvent()
		if event == nil {
			return
		}

		switch event := event.(type) {
		case *tcell.EventKey:
			switch {
			case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyCtrlC:
				w.send(pointview.QuitEvent())
			case event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q'):
				w.send(pointview.QuitEvent())
			}
		case *tcell.EventResize:
			cols, rows := event.Size()
			w.screen.Sync()
			w.send(pointview.ResizeEvent(cols, rows*2))
		}
	}
}

func (w *Window) send(ev pointview.Event) {
	select {
	case w.events <- ev:
	default:
		pointview.Logger().Debug("termwin: event dropped", slog.String("kind", ev.Kind.String()))
	}
}

type surface struct {
	*pointview.Frame
	screen tcell.Screen
}

// Present writes every cell pair to the screen and shows it.
func (s *surface) Present() error {
	cols, rows := s.screen.Size()
	cols = min(cols, s.Width())
	rows = min(rows, (s.Height()+1)/2)

	for y := range rows {
		for x := range cols {
			top := s.RGBAAt(x, 2*y)
			bottom := s.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}
