package libui

import (
	"image"
	"sync"
)

// MemWindow is a Window that only records what is asked of it.
// It backs headless rendering and tests.
type MemWindow struct {
	mu     sync.Mutex
	Pos    image.Point
	Hidden bool
	Label  string
	Size   image.Point
	Moves  []image.Point
	Err    error // returned by every operation when set
}

func (w *MemWindow) Origin() (image.Point, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Pos, w.Err
}

func (w *MemWindow) Move(p image.Point) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Pos = p
	w.Moves = append(w.Moves, p)
	return nil
}

func (w *MemWindow) Hide() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Hidden = true
	return nil
}

func (w *MemWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Hidden = false
	return nil
}

func (w *MemWindow) Current() error {
	return w.Err
}

func (w *MemWindow) Resize(width, height int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Size = image.Pt(width, height)
	return nil
}

func (w *MemWindow) SetLabel(label string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Label = label
	return w.Err
}

// MemScreen is a Screen that keeps the last presented frame.
type MemScreen struct {
	R        image.Rectangle // drawable area in screen coordinates
	Last     *image.RGBA
	Presents int
}

// NewMemScreen returns a w×h screen whose top-left is at origin.
func NewMemScreen(origin image.Point, w, h int) *MemScreen {
	return &MemScreen{R: image.Rectangle{origin, origin.Add(image.Pt(w, h))}}
}

func (s *MemScreen) Rect() image.Rectangle { return s.R }

func (s *MemScreen) Present(img *image.RGBA) error {
	s.Last = img
	s.Presents++
	return nil
}

func (s *MemScreen) Reattach() error { return nil }
