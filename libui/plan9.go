package libui

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/elizafairlady/qrjelly/draw"
)

// Open connects to the draw device, the mouse and the console and
// returns an App whose events are fed from them. The window is
// labelled label. Call Close when done.
func Open(label string, log *slog.Logger) (*App, error) {
	d, err := draw.Init(label)
	if err != nil {
		return nil, err
	}
	mc, err := draw.InitMouse()
	if err != nil {
		d.Close()
		return nil, err
	}
	kc, err := draw.InitKeyboard()
	if err != nil {
		mc.Close()
		d.Close()
		return nil, err
	}

	win := &drawWindow{d: d, wctl: draw.NewWctl()}
	scr := &drawScreen{d: d}
	a := New(win, scr, log)
	a.closers = append(a.closers, d, mc, kc, scr)

	go func() {
		for m := range mc.C {
			a.Post(MouseEvent(m.Point, m.Buttons))
		}
		a.Post(Event{Kind: KindQuit})
	}()
	go func() {
		for range mc.Resize {
			a.Post(Event{Kind: KindResize})
		}
	}()
	go func() {
		for r := range kc.C {
			a.Post(KeyEvent(r))
		}
	}()
	return a, nil
}

// drawWindow moves and hides the rio window through /dev/wctl.
type drawWindow struct {
	d    *draw.Display
	wctl *draw.Wctl
}

func (w *drawWindow) Origin() (image.Point, error) {
	st, err := w.wctl.State()
	if err != nil {
		return image.Point{}, err
	}
	return st.R.Min, nil
}

func (w *drawWindow) Move(p image.Point) error {
	return w.wctl.Move(p)
}

func (w *drawWindow) Hide() error {
	return w.wctl.Hide()
}

func (w *drawWindow) Show() error {
	if err := w.wctl.Unhide(); err != nil {
		return err
	}
	return w.wctl.Current()
}

func (w *drawWindow) Current() error {
	return w.wctl.Current()
}

// Resize asks rio for a window whose inside is w×h; rio's size
// includes the border.
func (w *drawWindow) Resize(width, height int) error {
	return w.wctl.Resize(width+2*draw.Borderwidth, height+2*draw.Borderwidth)
}

func (w *drawWindow) SetLabel(label string) error {
	return w.d.SetLabel(label)
}

// drawScreen presents frames by loading them into a server-side
// image and copying that onto the window.
type drawScreen struct {
	d    *draw.Display
	back *draw.Image
}

func (s *drawScreen) Rect() image.Rectangle {
	return s.d.Inner()
}

func (s *drawScreen) Present(img *image.RGBA) error {
	r := img.Bounds()
	if s.back == nil || s.back.R != r {
		if s.back != nil {
			s.back.Free()
		}
		back, err := s.d.AllocImage(r, draw.XRGB32, false, draw.DBlack)
		if err != nil {
			return fmt.Errorf("alloc back buffer: %w", err)
		}
		s.back = back
	}
	if err := s.back.LoadRGBA(img); err != nil {
		return err
	}
	dst := s.d.Inner()
	if err := s.d.Window.Draw(image.Rectangle{dst.Min, dst.Min.Add(r.Size())}, s.back, nil, r.Min); err != nil {
		return err
	}
	return s.d.Flush()
}

func (s *drawScreen) Reattach() error {
	return s.d.GetWindow()
}

func (s *drawScreen) Close() error {
	if s.back != nil {
		err := s.back.Free()
		s.back = nil
		return err
	}
	return nil
}
