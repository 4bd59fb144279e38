// Package widget provides the small set of controls the QR Jelly
// window is built from. Every widget is a libui.View.
package widget

import (
	"image"

	"github.com/elizafairlady/qrjelly/libui"
)

// mouseIn returns the mouse state of ev and whether the pointer is in r.
func mouseIn(ev libui.Event, r image.Rectangle) (libui.Mouse, bool, bool) {
	if ev.Kind != libui.KindMouse {
		return libui.Mouse{}, false, false
	}
	m, ok := ev.Data.(libui.Mouse)
	if !ok {
		return libui.Mouse{}, false, false
	}
	return m, m.Point.In(r), true
}

// clicker tracks a press-release pair over a rectangle.
type clicker struct {
	hover   bool
	down    bool // primary button state at the last event
	pressed bool // the press started inside
}

// track updates the state for m and reports whether a click (primary
// press and release, both inside r) just completed, and whether the
// event belongs to this widget.
func (c *clicker) track(m libui.Mouse, inside bool) (clicked, consumed bool) {
	c.hover = inside
	wasDown := c.down
	c.down = m.Primary()
	switch {
	case c.down && !wasDown:
		if inside {
			c.pressed = true
			return false, true
		}
	case c.down && c.pressed:
		return false, true
	case !c.down && c.pressed:
		c.pressed = false
		return inside, true
	}
	return false, false
}

// Dispatch delivers ev to views. Mouse events go to every view so
// each can track hover and release; other events stop at the first
// view that consumes them. It reports whether any view consumed ev.
func Dispatch(a *libui.App, ev libui.Event, views ...libui.View) bool {
	consumed := false
	for _, v := range views {
		if v == nil {
			continue
		}
		if v.Handle(a, ev) {
			consumed = true
			if ev.Kind != libui.KindMouse {
				return true
			}
		}
	}
	return consumed
}
