package dialog

import (
	"image"
	"image/color"

	"github.com/elizafairlady/qrjelly/draw"
	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
	"github.com/elizafairlady/qrjelly/widget"
)

const (
	gridCols = 16
	cellSize = 14
)

// ColorDialog lets the user pick one of the 256 Plan 9 colormap
// colors. A click on a cell picks it; Escape or a click outside the
// dialog cancels.
type ColorDialog struct {
	Title   string
	Current color.Color
	// OnDone receives the chosen color, or ok=false on cancel.
	OnDone func(a *libui.App, c color.RGBA, ok bool)

	palette color.Palette
	hover   int
	waitUp  bool
	frame
	title *widget.Label
	grid  *layout.Node
	swat  *layout.Node
}

// NewColorDialog returns a picker starting at cur.
func NewColorDialog(title string, cur color.Color, done func(a *libui.App, c color.RGBA, ok bool)) *ColorDialog {
	return &ColorDialog{
		Title:   title,
		Current: cur,
		OnDone:  done,
		palette: draw.Cmap(),
		hover:   -1,
	}
}

// Show installs the dialog as the overlay. The press that opened
// the dialog is ignored until released.
func (d *ColorDialog) Show(a *libui.App) {
	d.waitUp = true
	a.Overlay(d)
}

func (d *ColorDialog) Layout(a *libui.App) *layout.Node {
	d.title = &widget.Label{Text: d.Title, Bold: true}
	side := gridCols * cellSize
	d.grid = layout.Fixed("grid", side, side)
	d.swat = layout.Fixed("current", side, a.Theme.SwatchSize)
	body := &layout.Node{
		Kind:     layout.VBox,
		Gap:      a.Theme.Gap,
		Children: []*layout.Node{d.title.Layout(a), d.grid, d.swat},
	}
	return d.build(a, body)
}

func (d *ColorDialog) Draw(a *libui.App, c *libui.Canvas) {
	d.draw(a, c)
	d.title.Draw(a, c)
	for i, col := range d.palette {
		c.Fill(d.cell(i), col)
	}
	if d.hover >= 0 {
		c.StrokeRoundRect(d.cell(d.hover).Inset(-1), 0, 2, a.Theme.FocusRing)
	}
	cur := d.Current
	if d.hover >= 0 {
		cur = d.palette[d.hover]
	}
	if cur == nil {
		cur = color.Black
	}
	c.FillRoundRect(d.swat.Rect, 4, a.Theme.Border)
	c.FillRoundRect(d.swat.Rect.Inset(2), 3, cur)
}

// cell returns the rectangle of palette entry i.
func (d *ColorDialog) cell(i int) image.Rectangle {
	p := d.grid.Rect.Min.Add(image.Pt(i%gridCols*cellSize, i/gridCols*cellSize))
	return image.Rectangle{p, p.Add(image.Pt(cellSize, cellSize))}
}

// cellAt returns the palette index under p, or -1.
func (d *ColorDialog) cellAt(p image.Point) int {
	if d.grid == nil || !p.In(d.grid.Rect) {
		return -1
	}
	q := p.Sub(d.grid.Rect.Min).Div(cellSize)
	i := q.Y*gridCols + q.X
	if i < 0 || i >= len(d.palette) {
		return -1
	}
	return i
}

func (d *ColorDialog) Handle(a *libui.App, ev libui.Event) bool {
	switch ev.Kind {
	case libui.KindKey:
		if ev.Data.(libui.Key).Rune == draw.KeyEscape {
			d.finish(a, color.RGBA{}, false)
		}
		return true
	case libui.KindMouse:
		p, down := pressAt(ev)
		d.hover = d.cellAt(p)
		if d.waitUp {
			d.waitUp = down
			return true
		}
		if !down {
			return true
		}
		if d.outside(ev) {
			d.finish(a, color.RGBA{}, false)
			return true
		}
		if i := d.hover; i >= 0 {
			d.finish(a, color.RGBAModel.Convert(d.palette[i]).(color.RGBA), true)
		}
		return true
	}
	return false
}

func (d *ColorDialog) finish(a *libui.App, c color.RGBA, ok bool) {
	a.Dismiss()
	if d.OnDone != nil {
		d.OnDone(a, c, ok)
	}
}
