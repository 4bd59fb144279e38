package draw

import (
	"fmt"
	"image"
)

// AllocImage allocates an image with rectangle r and channel pix,
// filled with val (0xRRGGBBAA). If repl is set the image tiles the
// plane, which is how Plan 9 makes a solid color brush.
func (d *Display) AllocImage(r image.Rectangle, pix Pix, repl bool, val uint32) (*Image, error) {
	if r.Empty() {
		return nil, fmt.Errorf("draw: alloc: bad rectangle %v", r)
	}
	if pix.Depth() == 0 {
		return nil, fmt.Errorf("draw: alloc: bad channel %#x", uint32(pix))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}

	d.imageid++
	id := d.imageid

	clipr := r
	if repl {
		clipr = image.Rect(-0x3FFFFFFF, -0x3FFFFFFF, 0x3FFFFFFF, 0x3FFFFFFF)
	}

	// b id[4] screenid[4] refresh[1] chan[4] repl[1] r[4*4] clipr[4*4] rrggbbaa[4]
	a, err := d.bufimage(1 + 4 + 4 + 1 + 4 + 1 + 4*4 + 4*4 + 4)
	if err != nil {
		return nil, err
	}
	a[0] = 'b'
	bplong(a[1:], id)
	bplong(a[5:], 0)
	a[9] = 0 // Refnone
	bplong(a[10:], uint32(pix))
	a[14] = 0
	if repl {
		a[14] = 1
	}
	bprect(a[15:], r)
	bprect(a[31:], clipr)
	bplong(a[47:], val)

	return &Image{
		Display: d,
		id:      id,
		Pix:     pix,
		R:       r,
		Clipr:   clipr,
		Repl:    repl,
	}, nil
}

// Free releases the image on the server.
func (i *Image) Free() error {
	if i == nil || i.Display == nil || i.id == 0 {
		return nil
	}
	d := i.Display
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	// f id[4]
	a, err := d.bufimage(1 + 4)
	if err != nil {
		return err
	}
	a[0] = 'f'
	bplong(a[1:], i.id)
	i.Display = nil
	return nil
}

// Load replaces the pixels in r with data, which holds rows of r in
// the image's channel format. It returns the number of bytes used.
func (i *Image) Load(r image.Rectangle, data []byte) (int, error) {
	d := i.Display
	if !r.In(i.R) {
		return 0, fmt.Errorf("draw: load: %v not in %v", r, i.R)
	}
	bpl := bytesPerLine(r.Dx(), i.Pix.Depth())
	if bpl <= 0 {
		return 0, fmt.Errorf("draw: load: bad depth")
	}
	if len(data) < bpl*r.Dy() {
		return 0, fmt.Errorf("draw: load: need %d bytes, have %d", bpl*r.Dy(), len(data))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return 0, ErrClosed
	}

	const hdr = 1 + 4 + 4*4
	lines := (drawBufSize - hdr) / bpl
	if lines < 1 {
		return 0, fmt.Errorf("draw: load: row of %d bytes exceeds message size", bpl)
	}

	n := 0
	for y := r.Min.Y; y < r.Max.Y; y += lines {
		if y+lines > r.Max.Y {
			lines = r.Max.Y - y
		}
		chunk := bpl * lines
		// y id[4] r[4*4] data[x*1]
		a, err := d.bufimage(hdr + chunk)
		if err != nil {
			return n, err
		}
		a[0] = 'y'
		bplong(a[1:], i.id)
		bprect(a[5:], image.Rect(r.Min.X, y, r.Max.X, y+lines))
		copy(a[hdr:], data[n:n+chunk])
		n += chunk
	}
	return n, nil
}
