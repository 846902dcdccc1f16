// Command pointview draws a live trail of 2D points read from stdin or a
// file. Each input line holds "x y" with coordinates in [0,1); the newest
// 256 points are shown, brighter the more recent they are.
//
// Press Escape or Q, or close the window, to quit. End of input keeps the
// last points on screen.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pointview"
	"github.com/gogpu/pointview/input"
	"github.com/gogpu/pointview/internal/cli"
	"github.com/gogpu/pointview/window"
	_ "github.com/gogpu/pointview/window/gogpuwin"
	_ "github.com/gogpu/pointview/window/termwin"
)

// config holds the command line settings.
type config struct {
	Backend   string
	Title     string
	Width     int
	Height    int
	Thickness int
	Capacity  int
	Snapshot  string
	Verbose   bool
	LogLevel  string
}

func main() {
	os.Exit(cli.Execute(context.Background(), newRootCmd()))
}

func newRootCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:   "pointview [flags] [file]",
		Short: "Draw a live trail of 2D points",
		Long: `pointview reads "x y" lines from standard input, or from FILE, and draws
the most recent points as squares that fade with age. Coordinates are
normalized: (0,0) is the top-left corner and (1,1) the bottom-right.`,
		Example: `  # Plot a generator's output
  ./simulate | pointview

  # Larger trail in the terminal
  pointview --backend term --capacity 1024 points.txt`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args, cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Backend, "backend", "", "window backend ("+strings.Join(window.List(), ", ")+"); default: best available")
	f.StringVar(&cfg.Title, "title", window.DefaultTitle, "window title")
	f.IntVar(&cfg.Width, "width", pointview.DefaultWidth, "initial window width in pixels")
	f.IntVar(&cfg.Height, "height", pointview.DefaultHeight, "initial window height in pixels")
	f.IntVar(&cfg.Thickness, "thickness", pointview.DefaultThickness, "half-size of a point square in pixels")
	f.IntVar(&cfg.Capacity, "capacity", pointview.DefaultCapacity, "number of points kept on screen")
	f.StringVar(&cfg.Snapshot, "snapshot", "", "with --backend image, write the last frame to this PNG on exit")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, cfg config, args []string, stdin io.Reader, stderr io.Writer) error {
	level, err := cli.ParseLevel(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return err
	}
	cli.InstallLogger(cli.NewLogger(stderr, level))

	in, err := openInput(args, stdin)
	if err != nil {
		return err
	}

	win, err := window.OpenByName(cfg.Backend, window.Options{
		Title:    cfg.Title,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Snapshot: cfg.Snapshot,
	})
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("open window: %w", err)
	}

	loop, err := pointview.NewLoop(win, in,
		pointview.WithCapacity(cfg.Capacity),
		pointview.WithThickness(cfg.Thickness))
	if err != nil {
		_ = in.Close()
		_ = win.Close()
		return err
	}

	slog.Debug("pointview: starting", slog.String("backend", backendName(cfg.Backend)))
	return pointview.Run(win, func() error {
		return loop.Run(ctx)
	})
}

// openInput returns the line source for the optional file argument.
func openInput(args []string, stdin io.Reader) (pointview.InputChannel, error) {
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return input.Open(f), nil
	}
	if f, ok := stdin.(*os.File); ok {
		return input.Open(f), nil
	}
	return input.NewReader(stdin), nil
}

func backendName(name string) string {
	if name == "" {
		return "auto"
	}
	return name
}
