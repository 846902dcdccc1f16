// Package cli holds the setup shared by the pointview commands: console
// logging and fang execution.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/gogpu/gg"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gogpu/pointview"
)

// Commit is set at link time.
var Commit = "dev"

// ParseLevel maps a level name to a slog level. verbose forces debug.
func ParseLevel(name string, verbose bool) (slog.Level, error) {
	if verbose {
		return slog.LevelDebug, nil
	}
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// NewLogger returns a console logger writing to w, colored when w is a
// terminal.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// InstallLogger routes pointview, gg and the default slog logger to l.
func InstallLogger(l *slog.Logger) {
	slog.SetDefault(l)
	pointview.SetLogger(l)
	gg.SetLogger(l)
}

// Execute runs root through fang with version info and SIGINT/SIGTERM
// cancelling the command context. It returns the process exit code.
func Execute(ctx context.Context, root *cobra.Command) int {
	if err := fang.Execute(ctx, root,
		fang.WithVersion(pointview.Version),
		fang.WithCommit(Commit),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, "error:", err)
		}),
	); err != nil {
		return 1
	}
	return 0
}
