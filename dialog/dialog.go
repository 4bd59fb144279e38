// Package dialog implements the modal overlays QR Jelly uses in place
// of native dialogs: a color picker over the Plan 9 color map and a
// save-path prompt. A dialog is shown with Show, which installs it as
// the App overlay; it removes itself and reports through its callback.
package dialog

import (
	"image"

	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/theme"
)

// frame is the dimmed backdrop and centered card shared by dialogs.
type frame struct {
	root *layout.Node
	card *layout.Node
}

// build wraps body in a centered card the size of body.
func (f *frame) build(a *libui.App, body *layout.Node) *layout.Node {
	pad := a.Theme.Gap
	body.Pad = layout.Uniform(pad)
	layout.Measure(body)
	body.MaxW, body.MaxH = body.W, body.H
	body.Align = layout.Center
	f.card = body
	f.root = &layout.Node{Kind: layout.Stack, Children: []*layout.Node{body}}
	return f.root
}

func (f *frame) draw(a *libui.App, c *libui.Canvas) {
	th := a.Theme
	c.Fill(f.root.Rect, th.Overlay)
	c.FillRoundRect(f.card.Rect, th.Radius, theme.Over(th.Fill, th.Backdrop))
	c.StrokeRoundRect(f.card.Rect, th.Radius, 1, th.FocusRing)
}

// outside reports whether ev is a primary press outside the card.
func (f *frame) outside(ev libui.Event) bool {
	if f.card == nil || ev.Kind != libui.KindMouse {
		return false
	}
	m := ev.Data.(libui.Mouse)
	return m.Primary() && !m.Point.In(f.card.Rect)
}

func pressAt(ev libui.Event) (image.Point, bool) {
	if ev.Kind != libui.KindMouse {
		return image.Point{}, false
	}
	m := ev.Data.(libui.Mouse)
	return m.Point, m.Primary()
}
