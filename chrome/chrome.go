// Package chrome draws the frameless window shell: a rounded
// translucent panel with a control row, that is dragged around the
// screen by pressing anywhere not claimed by a control.
package chrome

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/elizafairlady/qrjelly/draw"
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/widget"
)

// IconSize is the edge of the square the window icon is drawn in.
const IconSize = 16

// Drag is the state of a window drag.
type Drag struct {
	Active bool
	Anchor image.Point // pointer minus window origin at the press
}

// Frame is the window shell. Its content region holds any view.
type Frame struct {
	Title string
	Icon  image.Image // may be nil

	content  libui.View
	minimize *widget.Dot
	close    *widget.Dot
	title    *widget.Label
	drag     Drag

	root, icon, body *layout.Node
}

// New returns a frame labelled title with an optional icon.
func New(title string, icon image.Image) *Frame {
	f := &Frame{Title: title, Icon: icon}
	f.minimize = &widget.Dot{ID: "minimize", OnClick: f.hide}
	f.close = &widget.Dot{ID: "close", OnClick: func(a *libui.App) { a.Quit() }}
	f.title = &widget.Label{Text: title, Bold: true}
	return f
}

// LoadIcon reads an icon from path. Files ending in .bit are read as
// uncompressed Plan 9 images; anything else must be a PNG.
func LoadIcon(path string) (image.Image, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	var img image.Image
	if strings.ToLower(filepath.Ext(path)) == ".bit" {
		img, err = draw.ReadImage(fp)
	} else {
		img, err = png.Decode(fp)
	}
	if err != nil {
		return nil, fmt.Errorf("chrome: icon %s: %w", path, err)
	}
	return img, nil
}

// SetContent replaces the view shown below the control row.
func (f *Frame) SetContent(v libui.View) {
	f.content = v
}

// Content returns the current content view, or nil.
func (f *Frame) Content() libui.View {
	return f.content
}

// Drag returns the current drag state.
func (f *Frame) Drag() Drag {
	return f.drag
}

// Show makes the window visible and current and labels it with
// the frame title.
func (f *Frame) Show(a *libui.App) {
	if err := a.Window.Show(); err != nil {
		a.Log.Warn("show window", "err", err)
	}
	if err := a.Window.Current(); err != nil {
		a.Log.Warn("make window current", "err", err)
	}
	if err := a.Window.SetLabel(f.Title); err != nil {
		a.Log.Warn("set window label", "err", err)
	}
}

func (f *Frame) hide(a *libui.App) {
	f.drag = Drag{}
	if err := a.Window.Hide(); err != nil {
		a.Log.Warn("hide window", "err", err)
	}
}

func (f *Frame) Layout(a *libui.App) *layout.Node {
	th := a.Theme
	f.minimize.Size, f.close.Size = th.ControlSize, th.ControlSize
	f.minimize.Color, f.minimize.Hover, f.minimize.Ring = th.Minimize, th.MinimizeHover, th.MinimizeRing
	f.close.Color, f.close.Hover, f.close.Ring = th.Close, th.CloseHover, th.CloseRing
	f.minimize.RingW, f.close.RingW = th.RingW, th.RingW
	f.title.Text = f.Title

	f.icon = layout.Fixed("icon", 0, 0)
	if f.Icon != nil {
		f.icon = layout.Fixed("icon", IconSize, IconSize)
	}
	f.icon.Align = layout.Center
	title := f.title.Layout(a)
	title.Align = layout.Center
	bar := layout.Box(layout.HBox,
		f.icon,
		title,
		layout.Spacer(),
		f.minimize.Layout(a),
		f.close.Layout(a),
	)
	bar.ID = "controls"
	bar.Pad = layout.Uniform(th.ControlMargin)
	bar.Gap = th.ControlGap

	f.body = layout.Box(layout.Stack)
	f.body.ID = "content"
	f.body.Pad = layout.Insets{Top: th.ContentTop}
	f.body.Flex = 1
	if f.content != nil {
		f.body.Children = append(f.body.Children, f.content.Layout(a))
	}

	f.root = layout.Box(layout.VBox, bar, f.body)
	f.root.ID = "frame"
	f.root.Pad = layout.Insets(th.Margin)
	f.root.Gap = th.Gap
	return f.root
}

func (f *Frame) Draw(a *libui.App, c *libui.Canvas) {
	th := a.Theme
	b := c.Bounds()
	c.Fill(b, th.Backdrop)
	c.FillRoundRect(b, th.Radius, th.Fill)
	if f.Icon != nil {
		c.Image(widget.Fit(f.Icon, IconSize), f.icon.Rect.Min)
	}
	f.title.Draw(a, c)
	f.minimize.Draw(a, c)
	f.close.Draw(a, c)
	if f.content != nil {
		f.content.Draw(a, c)
	}
}

func (f *Frame) Handle(a *libui.App, ev libui.Event) bool {
	if ev.Kind != libui.KindMouse {
		if f.content != nil {
			return f.content.Handle(a, ev)
		}
		return false
	}
	m, ok := ev.Data.(libui.Mouse)
	if !ok {
		return false
	}
	if f.drag.Active {
		if !m.Primary() {
			f.drag = Drag{}
			return true
		}
		if err := a.Window.Move(m.Screen.Sub(f.drag.Anchor)); err != nil {
			a.Log.Warn("move window", "err", err)
		}
		return true
	}

	consumed := widget.Dispatch(a, ev, f.minimize, f.close, f.content)
	if consumed || !m.Pressed() {
		return consumed
	}
	if f.root == nil || !m.Point.In(f.root.Rect) {
		return false
	}
	origin, err := a.Window.Origin()
	if err != nil {
		a.Log.Warn("window origin", "err", err)
		return false
	}
	f.drag = Drag{Active: true, Anchor: m.Screen.Sub(origin)}
	return true
}
