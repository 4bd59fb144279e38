package draw

import (
	"fmt"
	"image"
	"image/color"
)

// CmapColor returns color c of the standard Plan 9 CMAP8 colormap,
// following cmap2rgb(2).
func CmapColor(c int) color.RGBA {
	c &= 0xFF
	r := c >> 6
	v := (c >> 4) & 3
	j := (c - v + r) & 15
	g := j >> 2
	b := j & 3

	den := max(r, g, b)
	if den == 0 {
		v *= 17
		return color.RGBA{uint8(v), uint8(v), uint8(v), 0xFF}
	}
	num := 17 * (4*den + v)
	return color.RGBA{uint8(r * num / den), uint8(g * num / den), uint8(b * num / den), 0xFF}
}

// Cmap returns the 256 colors of the CMAP8 colormap in index order.
func Cmap() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = CmapColor(i)
	}
	return p
}

// RGBA returns c as a 0xRRGGBBAA value for AllocImage.
func RGBA(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A)
}

// LoadRGBA copies src into the image at src's bounds, converting to
// the image's channel format. Only byte-aligned RGB formats are handled:
// r8g8b8, x8r8g8b8 and a8r8g8b8.
func (i *Image) LoadRGBA(src *image.RGBA) error {
	r := src.Bounds().Intersect(i.R)
	if r.Empty() {
		return nil
	}
	data, err := packRGBA(src.SubImage(r).(*image.RGBA), i.Pix)
	if err != nil {
		return err
	}
	_, err = i.Load(r, data)
	return err
}

// packRGBA lays out the pixels of src as rows in channel format pix.
func packRGBA(src *image.RGBA, pix Pix) ([]byte, error) {
	var nb int
	switch pix {
	case RGB24:
		nb = 3
	case XRGB32, ARGB32:
		nb = 4
	default:
		return nil, fmt.Errorf("draw: load: unsupported channel %s", pix)
	}
	r := src.Bounds()
	out := make([]byte, 0, r.Dx()*r.Dy()*nb)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		o := src.PixOffset(r.Min.X, y)
		row := src.Pix[o : o+4*r.Dx()]
		for x := 0; x < len(row); x += 4 {
			out = append(out, row[x+2], row[x+1], row[x])
			if nb == 4 {
				out = append(out, row[x+3])
			}
		}
	}
	return out, nil
}
