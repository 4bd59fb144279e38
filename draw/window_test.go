package draw

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"
)

// fakeCtl answers ctl reads with a fixed info line.
type fakeCtl struct{ info string }

func (f *fakeCtl) ReadAt(b []byte, off int64) (int, error) {
	return copy(b, f.info[off:]), nil
}

func (f *fakeCtl) Close() error { return nil }

func TestGetWindowNoWinname(t *testing.T) {
	var buf bytes.Buffer
	d := testDisplay(&buf)
	d.Window = nil
	d.devdir = t.TempDir()
	if err := d.GetWindow(); err != nil {
		t.Fatalf("GetWindow: %v", err)
	}
	if d.Window != d.Image {
		t.Error("Window is not the display image")
	}
	if got := d.Inner(); got != d.Image.R {
		t.Errorf("Inner = %v, want %v", got, d.Image.R)
	}
}

func TestGetWindowNamed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "winname"), []byte("window.3.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := image.Rect(100, 100, 500, 700)
	var buf bytes.Buffer
	d := testDisplay(&buf)
	d.devdir = dir
	d.ctlfd = &fakeCtl{info: infoLine(1, 9, "x8r8g8b8", 0, r, r)}

	if err := d.GetWindow(); err != nil {
		t.Fatalf("GetWindow: %v", err)
	}
	if d.Window.R != r {
		t.Errorf("Window.R = %v, want %v", d.Window.R, r)
	}
	if got, want := d.Inner(), r.Inset(Borderwidth); got != want {
		t.Errorf("Inner = %v, want %v", got, want)
	}

	msg := buf.Bytes()
	name := "window.3.7"
	if len(msg) != 6+len(name) || msg[0] != 'n' || int(msg[5]) != len(name) || string(msg[6:]) != name {
		t.Errorf("name message = %q", msg)
	}
}

func TestGetWindowShortCtl(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "winname"), []byte("w"), 0o644)
	var buf bytes.Buffer
	d := testDisplay(&buf)
	d.devdir = dir
	d.ctlfd = &fakeCtl{info: "1 2"}
	if err := d.GetWindow(); err == nil {
		t.Error("GetWindow with short ctl reply succeeded")
	}
}
