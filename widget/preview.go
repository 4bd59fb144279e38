package widget

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/elizafairlady/qrjelly/layout"
	"github.com/elizafairlady/qrjelly/libui"
)

// Preview shows an image scaled to fit a square area, keeping its
// aspect ratio, centered. Scaling uses a Catmull-Rom filter; the
// scaled copy is cached until the image changes.
type Preview struct {
	Size        int
	Placeholder string

	img    image.Image
	scaled *image.RGBA
	node   *layout.Node
}

// SetImage replaces the previewed image. A nil image clears it.
func (p *Preview) SetImage(img image.Image) {
	if img != p.img {
		p.img = img
		p.scaled = nil
	}
}

// Image returns the unscaled image being previewed.
func (p *Preview) Image() image.Image {
	return p.img
}

// Scaled returns the scaled image, computing it if needed.
func (p *Preview) Scaled() *image.RGBA {
	if p.img == nil {
		return nil
	}
	if p.scaled == nil {
		p.scaled = Fit(p.img, p.Size)
	}
	return p.scaled
}

func (p *Preview) Layout(a *libui.App) *layout.Node {
	p.node = layout.Fixed("preview", p.Size, p.Size)
	p.node.Align = layout.Center
	return p.node
}

func (p *Preview) Draw(a *libui.App, c *libui.Canvas) {
	r := p.node.Rect
	s := p.Scaled()
	if s == nil {
		c.FillRoundRect(r, a.Theme.WidgetRadius, a.Theme.InputBg)
		c.StrokeRoundRect(r, a.Theme.WidgetRadius, 1, a.Theme.Border)
		c.TextCentered(p.Placeholder, r, false, a.Theme.DimText)
		return
	}
	off := image.Pt((r.Dx()-s.Bounds().Dx())/2, (r.Dy()-s.Bounds().Dy())/2)
	c.Image(s, r.Min.Add(off))
}

func (p *Preview) Handle(a *libui.App, ev libui.Event) bool {
	return false
}

// Fit scales img to fit in a size×size square keeping its aspect ratio.
func Fit(img image.Image, size int) *image.RGBA {
	b := img.Bounds()
	w, h := size, size
	if b.Dx() > b.Dy() {
		h = max(size*b.Dy()/b.Dx(), 1)
	} else if b.Dy() > b.Dx() {
		w = max(size*b.Dx()/b.Dy(), 1)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
