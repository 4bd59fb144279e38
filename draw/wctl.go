package draw

import (
	"fmt"
	"image"
	"io"
	"os"
)

// WindowState is the state line read from rio's /dev/wctl:
//
//	minx miny maxx maxy current|notcurrent visible|hidden
type WindowState struct {
	R       image.Rectangle
	Current bool
	Visible bool
}

// Wctl controls the rio window through /dev/wctl.
// Every operation opens the file afresh; rio serves one message per write.
type Wctl struct {
	Path string
}

// NewWctl returns a controller for /dev/wctl.
func NewWctl() *Wctl {
	return &Wctl{Path: "/dev/wctl"}
}

// State reads the current window state.
func (w *Wctl) State() (WindowState, error) {
	f, err := os.Open(w.Path)
	if err != nil {
		return WindowState{}, fmt.Errorf("wctl: %w", err)
	}
	defer f.Close()
	return ReadWindowState(f)
}

// ReadWindowState parses a wctl state line.
func ReadWindowState(r io.Reader) (WindowState, error) {
	buf := make([]byte, 6*12)
	n, err := io.ReadAtLeast(r, buf, 4*12)
	if err != nil {
		return WindowState{}, fmt.Errorf("wctl: read state: %w", err)
	}
	f := parseCtlLine(string(buf[:n]))
	if len(f) < 4 {
		return WindowState{}, fmt.Errorf("wctl: malformed state %q", buf[:n])
	}
	var st WindowState
	var v [4]int
	for i := range v {
		if _, err := fmt.Sscan(f[i], &v[i]); err != nil {
			return WindowState{}, fmt.Errorf("wctl: malformed field %q", f[i])
		}
	}
	st.R = image.Rect(v[0], v[1], v[2], v[3])
	st.Current = len(f) > 4 && f[4] == "current"
	st.Visible = len(f) <= 5 || f[5] != "hidden"
	return st, nil
}

// Move moves the window so its top-left corner is at p, keeping its size.
func (w *Wctl) Move(p image.Point) error {
	return w.write(fmt.Sprintf("move -minx %d -miny %d", p.X, p.Y))
}

// Hide hides the window, rio's equivalent of minimizing.
func (w *Wctl) Hide() error {
	return w.write("hide")
}

// Unhide shows a hidden window.
func (w *Wctl) Unhide() error {
	return w.write("unhide")
}

// Current raises the window and gives it the keyboard.
func (w *Wctl) Current() error {
	return w.write("current")
}

// Resize sets the window size, keeping its origin.
func (w *Wctl) Resize(width, height int) error {
	return w.write(fmt.Sprintf("resize -dx %d -dy %d", width, height))
}

func (w *Wctl) write(msg string) error {
	f, err := os.OpenFile(w.Path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("wctl: %w", err)
	}
	defer f.Close()
	if _, err := io.WriteString(f, msg); err != nil {
		return fmt.Errorf("wctl: %s: %w", msg, err)
	}
	return nil
}
