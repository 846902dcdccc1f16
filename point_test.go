package pointview

import "testing"

func TestParsePoint(t *testing.T) {
	tests := []struct {
		line string
		want Point
		ok   bool
	}{
		{"0.5 0.5\n", Pt(0.5, 0.5), true},
		{"  1e-1\t0.25  \r\n", Pt(0.1, 0.25), true},
		{"1 2 3\n", Point{}, false},
		{"foo bar\n", Point{}, false},
		{"\n", Point{}, false},
		{"0.1 Inf\n", Point{}, false},
	}
	for _, tt := range tests {
		got, ok := ParsePoint(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParsePoint(%q) = %v, %v; want %v, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPointScale(t *testing.T) {
	x, y := Pt(0.5, 0.25).Scale(640, 480)
	if x != 320 || y != 120 {
		t.Errorf("Scale = (%v, %v), want (320, 120)", x, y)
	}
	if s := Pt(0.5, 1).String(); s != "(0.5, 1)" {
		t.Errorf("String = %q", s)
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		k    EventKind
		want string
	}{
		{EventNone, "None"},
		{EventQuit, "Quit"},
		{EventResize, "Resize"},
		{EventKind(9), "EventKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
	if ev := ResizeEvent(3, 4); ev.Kind != EventResize || ev.Width != 3 || ev.Height != 4 {
		t.Errorf("ResizeEvent = %+v", ev)
	}
}
