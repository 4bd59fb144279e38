package draw

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// WriteImage writes img to w as an uncompressed Plan 9 image file
// with channel r8g8b8. See image(6).
func WriteImage(w io.Writer, img image.Image) error {
	if img == nil {
		return fmt.Errorf("writeimage: nil image")
	}
	r := img.Bounds()
	bw := bufio.NewWriter(w)
	if err := WriteImageHeader(bw, RGB24, r); err != nil {
		return err
	}
	row := make([]byte, bytesPerLine(r.Dx(), RGB24.Depth()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := 0
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			row[i+0] = c.B
			row[i+1] = c.G
			row[i+2] = c.R
			i += 3
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("writeimage: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writeimage: %w", err)
	}
	return nil
}

// WriteImageHeader writes the 60-byte image file header.
func WriteImageHeader(w io.Writer, pix Pix, r image.Rectangle) error {
	_, err := fmt.Fprintf(w, "%11s %11d %11d %11d %11d ",
		pix.String(), r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	if err != nil {
		return fmt.Errorf("writeimage: header: %w", err)
	}
	return nil
}
