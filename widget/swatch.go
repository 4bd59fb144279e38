package widget

import (
	"image/color"

	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
)

// Swatch is a clickable square showing a color.
type Swatch struct {
	ID      string
	Color   color.Color
	OnClick func(a *libui.App)

	node *layout.Node
	clicker
}

func (s *Swatch) Layout(a *libui.App) *layout.Node {
	n := a.Theme.SwatchSize
	s.node = layout.Fixed(s.ID, n, n)
	s.node.Align = layout.Center
	return s.node
}

func (s *Swatch) Draw(a *libui.App, c *libui.Canvas) {
	th := a.Theme
	r := s.node.Rect
	ring := th.Border
	if s.hover {
		ring = th.FocusRing
	}
	c.FillRoundRect(r, 4, ring)
	col := s.Color
	if col == nil {
		col = color.Black
	}
	c.FillRoundRect(r.Inset(2), 3, col)
}

func (s *Swatch) Handle(a *libui.App, ev libui.Event) bool {
	if s.node == nil {
		return false
	}
	m, inside, ok := mouseIn(ev, s.node.Rect)
	if !ok {
		return false
	}
	clicked, consumed := s.track(m, inside)
	if clicked && s.OnClick != nil {
		s.OnClick(a)
	}
	return consumed
}
