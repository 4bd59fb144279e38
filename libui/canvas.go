package libui

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface handed to views. It wraps a gg
// context the size of the window; coordinates are local to the window.
type Canvas struct {
	gc    *gg.Context
	fonts *Fonts
}

// NewCanvas returns a w×h canvas cleared to transparent.
func NewCanvas(w, h int, fonts *Fonts) *Canvas {
	return &Canvas{gc: gg.NewContext(max(w, 1), max(h, 1)), fonts: fonts}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.gc
}

// Fonts returns the canvas fonts, possibly nil.
func (c *Canvas) Fonts() *Fonts {
	return c.fonts
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.gc.Width(), c.gc.Height())
}

// Fill fills r with col.
func (c *Canvas) Fill(r image.Rectangle, col color.Color) {
	c.gc.SetColor(col)
	c.gc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	_ = c.gc.Fill()
}

// FillRoundRect fills r with col, with corners of the given radius.
func (c *Canvas) FillRoundRect(r image.Rectangle, radius int, col color.Color) {
	c.gc.SetColor(col)
	c.gc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), float64(radius))
	_ = c.gc.Fill()
}

// StrokeRoundRect outlines r with a line of width w.
func (c *Canvas) StrokeRoundRect(r image.Rectangle, radius int, w float64, col color.Color) {
	c.gc.SetColor(col)
	c.gc.SetLineWidth(w)
	// Inset by half the line so the stroke stays inside r.
	h := w / 2
	c.gc.DrawRoundedRectangle(float64(r.Min.X)+h, float64(r.Min.Y)+h, float64(r.Dx())-w, float64(r.Dy())-w, float64(radius))
	_ = c.gc.Stroke()
}

// FillCircle fills the circle inscribed in r.
func (c *Canvas) FillCircle(r image.Rectangle, col color.Color) {
	cx, cy, rad := circle(r)
	c.gc.SetColor(col)
	c.gc.DrawCircle(cx, cy, rad)
	_ = c.gc.Fill()
}

// StrokeCircle outlines the circle inscribed in r with a line of width w.
func (c *Canvas) StrokeCircle(r image.Rectangle, w float64, col color.Color) {
	cx, cy, rad := circle(r)
	c.gc.SetColor(col)
	c.gc.SetLineWidth(w)
	c.gc.DrawCircle(cx, cy, rad-w/2)
	_ = c.gc.Stroke()
}

func circle(r image.Rectangle) (cx, cy, rad float64) {
	cx = float64(r.Min.X) + float64(r.Dx())/2
	cy = float64(r.Min.Y) + float64(r.Dy())/2
	rad = float64(min(r.Dx(), r.Dy())) / 2
	return cx, cy, rad
}

// Text draws s with its top-left corner at p.
func (c *Canvas) Text(s string, p image.Point, bold bool, col color.Color) {
	face := c.fonts.Face(bold)
	if face == nil || s == "" {
		return
	}
	c.gc.SetFont(face)
	c.gc.SetColor(col)
	c.gc.DrawString(s, float64(p.X), float64(p.Y)+face.Metrics().Ascent)
}

// TextCentered draws s centered in r.
func (c *Canvas) TextCentered(s string, r image.Rectangle, bold bool, col color.Color) {
	face := c.fonts.Face(bold)
	if face == nil || s == "" {
		return
	}
	w, _ := text.Measure(s, face)
	m := face.Metrics()
	x := float64(r.Min.X) + (float64(r.Dx())-w)/2
	y := float64(r.Min.Y) + (float64(r.Dy())-(m.Ascent+m.Descent))/2 + m.Ascent
	c.gc.SetFont(face)
	c.gc.SetColor(col)
	c.gc.DrawString(s, x, y)
}

// Image draws img with its top-left corner at p.
func (c *Canvas) Image(img image.Image, p image.Point) {
	if img == nil {
		return
	}
	c.gc.DrawImage(gg.ImageBufFromImage(img), float64(p.X), float64(p.Y))
}

// RGBA returns the canvas pixels.
func (c *Canvas) RGBA() *image.RGBA {
	if img, ok := c.gc.Image().(*image.RGBA); ok {
		return img
	}
	img := c.gc.Image()
	out := image.NewRGBA(img.Bounds())
	for y := out.Rect.Min.Y; y < out.Rect.Max.Y; y++ {
		for x := out.Rect.Min.X; x < out.Rect.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.gc.Close()
}
