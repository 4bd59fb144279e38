package libui

import (
	"fmt"

	"github.com/elizafairlady/qrjelly/layout"
)

// Run starts the main event loop for the application.
// It paints root, then handles one event at a time and repaints,
// until Quit is called or the event channel is closed.
func (a *App) Run(root View) error {
	defer a.stop.Do(func() { close(a.done) })
	if err := a.Render(root); err != nil {
		return err
	}
	for ev := range a.events {
		a.Step(root, ev)
		if a.quit {
			return nil
		}
		// Coalesce bursts of input into one repaint.
		if len(a.events) > 0 {
			continue
		}
		if err := a.Render(root); err != nil {
			a.Log.Warn("render failed", "err", err)
		}
	}
	return nil
}

// Step dispatches a single event. Mouse events are translated to
// local coordinates and go to the overlay when there is one,
// otherwise to root.
func (a *App) Step(root View, ev Event) {
	switch ev.Kind {
	case KindCall:
		if fn, ok := ev.Data.(func(*App)); ok {
			fn(a)
		}
		return
	case KindQuit:
		a.quit = true
		return
	case KindResize:
		if err := a.Screen.Reattach(); err != nil {
			a.Log.Warn("reattach failed", "err", err)
		}
		return
	case KindMouse:
		m, ok := ev.Data.(Mouse)
		if !ok {
			return
		}
		m.Point = m.Screen.Sub(a.Screen.Rect().Min)
		m.Prev, a.buttons = a.buttons, m.Buttons
		ev.Data = m
	}

	target := root
	if a.overlay != nil {
		target = a.overlay
	}
	target.Handle(a, ev)
}

// Render lays out and paints root and any overlay, then presents
// the result.
func (a *App) Render(root View) error {
	c := a.Paint(root)
	defer c.Close()
	if err := a.Screen.Present(c.RGBA()); err != nil {
		return fmt.Errorf("libui: present: %w", err)
	}
	return nil
}

// Paint lays out and paints root and any overlay onto a new canvas.
// The caller closes the canvas.
func (a *App) Paint(root View) *Canvas {
	b := a.Bounds()
	c := NewCanvas(b.Dx(), b.Dy(), a.Fonts)
	layout.Run(root.Layout(a), b)
	root.Draw(a, c)
	if ov := a.overlay; ov != nil {
		layout.Run(ov.Layout(a), b)
		ov.Draw(a, c)
	}
	return c
}
