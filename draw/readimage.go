package draw

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
)

// ReadImage reads an uncompressed Plan 9 image file whose channels
// are all eight bits deep (k8, r8g8b8, x8r8g8b8, a8r8g8b8, m8...).
func ReadImage(r io.Reader) (image.Image, error) {
	hdr := make([]byte, 5*12)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("readimage: header: %w", err)
	}
	if bytes.HasPrefix(hdr, []byte("compressed\n")) {
		return nil, fmt.Errorf("readimage: compressed images not supported")
	}
	f := parseCtlLine(string(hdr))
	if len(f) != 5 {
		return nil, fmt.Errorf("readimage: malformed header %q", hdr)
	}
	pix, err := ParsePix(f[0])
	if err != nil {
		return nil, fmt.Errorf("readimage: %w", err)
	}
	var v [4]int
	for i := range v {
		if _, err := fmt.Sscan(f[i+1], &v[i]); err != nil {
			return nil, fmt.Errorf("readimage: malformed header field %q", f[i+1])
		}
	}
	rect := image.Rect(v[0], v[1], v[2], v[3])
	if rect.Empty() || rect.Dx()*rect.Dy() > 0x10000000 {
		return nil, fmt.Errorf("readimage: bad rectangle %v", rect)
	}

	chans, err := byteChannels(pix)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(rect)
	nb := len(chans)
	row := make([]byte, rect.Dx()*nb)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("readimage: row %d: %w", y, err)
		}
		for x := 0; x < rect.Dx(); x++ {
			img.SetRGBA(rect.Min.X+x, y, decodePixel(chans, row[x*nb:x*nb+nb]))
		}
	}
	return img, nil
}

// byteChannels returns the channel types of pix in memory order,
// lowest address first, requiring every channel to be eight bits.
func byteChannels(pix Pix) ([]int, error) {
	var chans []int
	for c := pix; c != 0; c >>= 8 {
		if c&15 != 8 {
			return nil, fmt.Errorf("readimage: unsupported channel %s", pix)
		}
		chans = append(chans, int(c>>4&15))
	}
	return chans, nil
}

func decodePixel(chans []int, b []byte) color.RGBA {
	c := color.RGBA{A: 0xFF}
	for i, t := range chans {
		v := b[i]
		switch t {
		case CRed:
			c.R = v
		case CGreen:
			c.G = v
		case CBlue:
			c.B = v
		case CGrey:
			c.R, c.G, c.B = v, v, v
		case CAlpha:
			c.A = v
		case CMap:
			m := CmapColor(int(v))
			c.R, c.G, c.B = m.R, m.G, m.B
		}
	}
	return c
}
