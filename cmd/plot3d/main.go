// Command plot3d draws a static 3D plot of "x y z" lines.
//
// Every input file, or standard input when none is given, becomes one
// series. The figure can be written to image files and shown in a window.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/pointview"
	"github.com/gogpu/pointview/internal/cli"
	"github.com/gogpu/pointview/plot3d"
	"github.com/gogpu/pointview/window"
	_ "github.com/gogpu/pointview/window/gogpuwin"
	_ "github.com/gogpu/pointview/window/termwin"
)

// screenDPI sizes the interactive window from the figure size in inches.
const screenDPI = 96

// config holds the command line settings.
type config struct {
	plot3d.Options
	Inches   []float64
	Backend  string
	Verbose  bool
	LogLevel string
}

func main() {
	root := newRootCmd()
	root.SetArgs(rewriteSizeArgs(os.Args[1:]))
	os.Exit(cli.Execute(context.Background(), root))
}

func newRootCmd() *cobra.Command {
	cfg := config{Options: plot3d.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "plot3d [flags] [file...]",
		Short: "Draw a 3D plot of x y z points",
		Long: `plot3d reads "x y z" lines from each FILE, or from standard input, and
draws every input as one series in shared 3D axes. Lines that are not three
numbers are skipped.`,
		Example: `  # Scatter plot of two runs, saved without opening a window
  plot3d --points --quiet -o runs.png run1.txt run2.txt

  # Smaller axes and a wide figure
  plot3d -x 100 -s 10 5 < track.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Inputs = args
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&cfg.Line, "line", "l", false, "draw each input as a 3D line (default)")
	f.BoolVarP(&cfg.Points, "points", "p", false, "draw each input as 3D points")
	f.IntVarP(&cfg.Limit, "limit", "x", plot3d.DefaultLimit, "symmetric limit of all axes")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", false, "do not open a window")
	f.StringArrayVarP(&cfg.Outputs, "output", "o", nil, "save the plot to `FILE` (repeatable; png, jpg, bmp, tiff)")
	f.IntVar(&cfg.DPI, "dpi", plot3d.DefaultDPI, "resolution of saved plots")
	f.IntVarP(&cfg.FontSize, "fontsize", "f", plot3d.DefaultFontSize, "font size in points")
	f.Float64SliceVarP(&cfg.Inches, "size", "s", []float64{plot3d.DefaultSize, plot3d.DefaultSize}, "figure size in inches: W H")
	f.StringVar(&cfg.Backend, "backend", "", "window backend; default: best available")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func run(ctx context.Context, cfg config, stdin io.Reader, stderr io.Writer) error {
	level, err := cli.ParseLevel(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return err
	}
	cli.InstallLogger(cli.NewLogger(stderr, level))

	if len(cfg.Inches) != 2 {
		return fmt.Errorf("--size needs two values, got %d", len(cfg.Inches))
	}
	opts := cfg.Options
	opts.Size = [2]float64{cfg.Inches[0], cfg.Inches[1]}
	opts.Normalize()

	series, err := plot3d.LoadAll(opts.Inputs, stdin)
	if err != nil {
		return err
	}
	fig := plot3d.NewFigure(opts, series)

	if err := plot3d.ExportAll(fig, opts.Outputs, opts.DPI); err != nil {
		return err
	}
	if opts.Quiet {
		return nil
	}

	width, height := opts.PixelSize(screenDPI)
	win, err := window.OpenByName(cfg.Backend, window.Options{
		Title:  "plot3d",
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	slog.Debug("plot3d: showing", slog.Int("series", len(series)))
	return pointview.Run(win, func() error {
		return plot3d.Show(ctx, win, fig)
	})
}
