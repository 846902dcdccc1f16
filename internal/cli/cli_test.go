package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/pointview"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    slog.Level
		wantErr bool
	}{
		{"", false, slog.LevelInfo, false},
		{"warn", false, slog.LevelWarn, false},
		{"ERROR", false, slog.LevelError, false},
		{"debug", false, slog.LevelDebug, false},
		{"warn", true, slog.LevelDebug, false},
		{"loud", false, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name, tt.verbose)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q, %v) error = %v", tt.name, tt.verbose, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q, %v) = %v, want %v", tt.name, tt.verbose, got, tt.want)
		}
	}
}

func TestInstallLogger(t *testing.T) {
	old, oldDefault := pointview.Logger(), slog.Default()
	t.Cleanup(func() {
		pointview.SetLogger(old)
		slog.SetDefault(oldDefault)
	})

	var buf bytes.Buffer
	InstallLogger(NewLogger(&buf, slog.LevelInfo))
	pointview.Logger().Info("hello", slog.Int("width", 3))
	pointview.Logger().Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "width") {
		t.Errorf("log output missing record: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
}

func TestNewLoggerPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo).Info("exported", slog.Int("markers", 2))
	if !strings.Contains(buf.String(), "markers=2") {
		t.Errorf("output = %q, want uncolored markers=2", buf.String())
	}
}
