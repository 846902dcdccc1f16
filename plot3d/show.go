package plot3d

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/pointview"
)

// ErrNoImageSurface is returned by Show when a window's surfaces cannot
// take a rendered image.
var ErrNoImageSurface = errors.New("plot3d: surface cannot draw images")

// imageSurface is implemented by surfaces built on pointview.Frame.
type imageSurface interface {
	pointview.Surface
	DrawImage(src image.Image)
}

// Show displays fig in win until the window asks to quit, its event channel
// closes or ctx is done. The figure is re-rendered at the new size on every
// resize. Show closes win before returning.
//
// Windows that implement pointview.Runner must be driven through
// pointview.Run.
func Show(ctx context.Context, win pointview.Window, fig *Figure) (err error) {
	var surface pointview.Surface
	defer func() {
		if surface != nil {
			closeSurface(surface)
		}
		err = errors.Join(err, win.Close())
	}()

	log := pointview.Logger()
	width, height := win.Size()
	if width <= 0 || height <= 0 {
		width, height = pointview.DefaultWidth, pointview.DefaultHeight
	}
	surface, err = showFrame(win, fig, width, height)
	if err != nil {
		return err
	}

	events := win.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Kind {
			case pointview.EventQuit:
				return nil
			case pointview.EventResize:
				if ev.Width <= 0 || ev.Height <= 0 {
					continue
				}
				s, err := showFrame(win, fig, ev.Width, ev.Height)
				if err != nil {
					log.Warn("plot3d: redraw", slog.Any("err", err))
					continue
				}
				closeSurface(surface)
				surface = s
			}
		}
	}
}

// showFrame renders fig at width×height onto a fresh surface and
// presents it.
func showFrame(win pointview.Window, fig *Figure, width, height int) (pointview.Surface, error) {
	s, err := win.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("plot3d: create surface: %w", err)
	}
	is, ok := s.(imageSurface)
	if !ok {
		closeSurface(s)
		return nil, ErrNoImageSurface
	}
	img, _ := Image(fig, width, height)
	is.DrawImage(img)
	if err := s.Present(); err != nil {
		closeSurface(s)
		return nil, fmt.Errorf("plot3d: present: %w", err)
	}
	return s, nil
}

func closeSurface(s pointview.Surface) {
	if c, ok := s.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}
