package widget

import (
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
)

// Button is a rounded push button.
type Button struct {
	ID       string
	Text     string
	Disabled bool
	Flex     int
	OnClick  func(a *libui.App)

	node *layout.Node
	clicker
}

func (b *Button) Layout(a *libui.App) *layout.Node {
	pad := a.Theme.Pad
	w, h := libui.Measure(a.Fonts.Face(true), b.Text)
	b.node = &layout.Node{ID: b.ID, MinW: w + 4*pad, MinH: h + 2*pad, Flex: b.Flex}
	return b.node
}

func (b *Button) Draw(a *libui.App, c *libui.Canvas) {
	th := a.Theme
	bg := th.ButtonBg
	fg := th.Text
	switch {
	case b.Disabled:
		bg = th.ButtonOff
		fg = th.DimText
	case b.hover || b.pressed:
		bg = th.ButtonHigh
	}
	c.FillRoundRect(b.node.Rect, th.WidgetRadius, bg)
	c.StrokeRoundRect(b.node.Rect, th.WidgetRadius, 1, th.Border)
	c.TextCentered(b.Text, b.node.Rect, true, fg)
}

func (b *Button) Handle(a *libui.App, ev libui.Event) bool {
	if b.node == nil {
		return false
	}
	m, inside, ok := mouseIn(ev, b.node.Rect)
	if !ok {
		return false
	}
	clicked, consumed := b.track(m, inside)
	if clicked && !b.Disabled && b.OnClick != nil {
		b.OnClick(a)
	}
	return consumed
}

// Hovered reports whether the pointer was over the button at the
// last mouse event.
func (b *Button) Hovered() bool {
	return b.hover
}
