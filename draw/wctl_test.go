package draw

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadWindowState(t *testing.T) {
	tests := []struct {
		line    string
		want    WindowState
		wantErr bool
	}{
		{
			fmt.Sprintf("%11d %11d %11d %11d %11s %11s ", 10, 20, 410, 620, "current", "visible"),
			WindowState{R: image.Rect(10, 20, 410, 620), Current: true, Visible: true},
			false,
		},
		{
			fmt.Sprintf("%11d %11d %11d %11d %11s %11s ", 0, 0, 100, 100, "notcurrent", "hidden"),
			WindowState{R: image.Rect(0, 0, 100, 100)},
			false,
		},
		{
			fmt.Sprintf("%11d %11d %11d %11d ", 1, 2, 3, 4),
			WindowState{R: image.Rect(1, 2, 3, 4), Visible: true},
			false,
		},
		{"short", WindowState{}, true},
		{fmt.Sprintf("%11s %11d %11d %11d ", "x", 2, 3, 4), WindowState{}, true},
	}
	for _, tt := range tests {
		got, err := ReadWindowState(strings.NewReader(tt.line))
		if (err != nil) != tt.wantErr {
			t.Errorf("ReadWindowState(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadWindowState(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestWctlMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wctl")
	w := &Wctl{Path: path}

	tests := []struct {
		name string
		op   func() error
		want string
	}{
		{"move", func() error { return w.Move(image.Pt(120, -5)) }, "move -minx 120 -miny -5"},
		{"hide", w.Hide, "hide"},
		{"unhide", w.Unhide, "unhide"},
		{"current", w.Current, "current"},
		{"resize", func() error { return w.Resize(400, 600) }, "resize -dx 400 -dy 600"},
	}
	for _, tt := range tests {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := tt.op(); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		got, _ := os.ReadFile(path)
		if string(got) != tt.want {
			t.Errorf("%s wrote %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWctlMissing(t *testing.T) {
	w := &Wctl{Path: filepath.Join(t.TempDir(), "nope")}
	if err := w.Hide(); err == nil {
		t.Error("Hide on missing wctl succeeded")
	}
	if _, err := w.State(); err == nil {
		t.Error("State on missing wctl succeeded")
	}
}
