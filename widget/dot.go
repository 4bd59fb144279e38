package widget

import (
	"image/color"

	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
)

// Dot is a round control button. When hovered it is drawn in Hover
// with a ring of color Ring around it.
type Dot struct {
	ID      string
	Size    int
	Color   color.RGBA
	Hover   color.RGBA
	Ring    color.RGBA
	RingW   int
	OnClick func(a *libui.App)

	node *layout.Node
	clicker
}

func (d *Dot) Layout(a *libui.App) *layout.Node {
	d.node = layout.Fixed(d.ID, d.Size, d.Size)
	d.node.Align = layout.Center
	return d.node
}

func (d *Dot) Draw(a *libui.App, c *libui.Canvas) {
	r := d.node.Rect
	if !d.hover {
		c.FillCircle(r, d.Color)
		return
	}
	c.FillCircle(r, d.Hover)
	c.StrokeCircle(r, float64(d.RingW), d.Ring)
}

func (d *Dot) Handle(a *libui.App, ev libui.Event) bool {
	if d.node == nil {
		return false
	}
	m, inside, ok := mouseIn(ev, d.node.Rect)
	if !ok {
		return false
	}
	clicked, consumed := d.track(m, inside)
	if clicked && d.OnClick != nil {
		d.OnClick(a)
	}
	return consumed
}

// Hovered reports whether the pointer was over the dot at the last
// mouse event.
func (d *Dot) Hovered() bool {
	return d.hover
}
