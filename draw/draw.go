// Package draw is a small client for the Plan 9 draw device.
// It speaks the /dev/draw message protocol directly: allocate, load,
// draw, free and flush images, look up the window image through
// /dev/winname, and read the mouse and console devices.
// See draw(3) and rio(4) from the Plan 9 manual.
package draw

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sync"
)

// drawBufSize is the size of the protocol message buffer.
// Messages are batched and written when the buffer fills or on Flush.
const drawBufSize = 8000

// Borderwidth is the width of the rio window border.
const Borderwidth = 4

// ErrClosed is returned by operations on a closed display.
var ErrClosed = errors.New("draw: display closed")

// Display is a connection to the draw device.
type Display struct {
	mu sync.Mutex

	devdir string
	ctlfd  ctlFile
	datafd io.Writer
	closer []io.Closer

	dirno   int
	imageid uint32
	buf     []byte
	bufp    int
	closed  bool

	Image  *Image // the display image, id 0
	Window *Image // the window image; Image when there is no window system
	Opaque *Image // 1x1 replicated opaque mask
}

// Image is an image held by the draw device.
type Image struct {
	Display *Display
	id      uint32
	Pix     Pix
	R       image.Rectangle
	Clipr   image.Rectangle
	Repl    bool
}

// ctlFile is the ctl file of a draw connection. Reads at offset 0
// return the info line of the most recently named or allocated image.
type ctlFile interface {
	io.ReaderAt
	io.Closer
}

// Init opens a connection to /dev/draw, attaches to the window
// named by /dev/winname and sets the window label.
func Init(label string) (*Display, error) {
	return initDisplay("/dev", label)
}

func initDisplay(devdir, label string) (*Display, error) {
	ctl, err := os.OpenFile(devdir+"/draw/new", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("draw: open %s/draw/new: %w", devdir, err)
	}

	buf := make([]byte, 12*12)
	n, err := ctl.Read(buf)
	if err != nil {
		ctl.Close()
		return nil, fmt.Errorf("draw: read ctl: %w", err)
	}
	info, err := parseInfo(string(buf[:n]))
	if err != nil {
		ctl.Close()
		return nil, err
	}

	datapath := fmt.Sprintf("%s/draw/%d/data", devdir, info.id)
	data, err := os.OpenFile(datapath, os.O_RDWR, 0)
	if err != nil {
		ctl.Close()
		return nil, fmt.Errorf("draw: open %s: %w", datapath, err)
	}

	d := newDisplay(ctl, data)
	d.devdir = devdir
	d.dirno = info.id
	d.closer = append(d.closer, data)
	d.Image = &Image{
		Display: d,
		id:      0,
		Pix:     info.pix,
		R:       info.r,
		Clipr:   info.clipr,
		Repl:    info.repl,
	}

	d.Opaque, err = d.AllocImage(image.Rect(0, 0, 1, 1), GREY1, true, DWhite)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("draw: alloc opaque: %w", err)
	}
	if label != "" {
		// rio may not be running; the label is cosmetic.
		_ = d.SetLabel(label)
	}
	if err := d.GetWindow(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// newDisplay returns a display writing protocol messages to data.
func newDisplay(ctl ctlFile, data io.Writer) *Display {
	return &Display{
		devdir: "/dev",
		ctlfd:  ctl,
		datafd: data,
		buf:    make([]byte, drawBufSize+1), // +1 for the flush message
	}
}

// SetLabel sets the window label.
func (d *Display) SetLabel(label string) error {
	return os.WriteFile(d.devdir+"/label", []byte(label), 0)
}

// Flush writes any buffered messages and makes the result visible.
func (d *Display) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	return d.flush(true)
}

// Close closes the connection.
func (d *Display) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	var first error
	for _, c := range d.closer {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	if d.ctlfd != nil {
		if err := d.ctlfd.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (d *Display) flush(visible bool) error {
	if visible {
		d.buf[d.bufp] = 'v'
		d.bufp++
	}
	return d.doflush()
}

func (d *Display) doflush() error {
	if d.bufp <= 0 {
		return nil
	}
	n, err := d.datafd.Write(d.buf[:d.bufp])
	bufp := d.bufp
	d.bufp = 0
	if err != nil {
		return fmt.Errorf("draw: write: %w", err)
	}
	if n != bufp {
		return fmt.Errorf("draw: short write: %d of %d", n, bufp)
	}
	return nil
}

// bufimage reserves n bytes in the message buffer, flushing first
// when they do not fit.
func (d *Display) bufimage(n int) ([]byte, error) {
	if n < 0 || n > drawBufSize {
		return nil, fmt.Errorf("draw: bad count in bufimage: %d", n)
	}
	if d.bufp+n > drawBufSize {
		if err := d.doflush(); err != nil {
			return nil, err
		}
	}
	p := d.buf[d.bufp : d.bufp+n]
	d.bufp += n
	return p, nil
}

// Draw copies src, masked by mask, into r of dst. Source and mask
// are aligned so that p in src and mask corresponds to r.Min in dst.
// A nil mask means fully opaque.
func (dst *Image) Draw(r image.Rectangle, src, mask *Image, p image.Point) error {
	d := dst.Display
	if mask == nil {
		mask = d.Opaque
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	// d dstid[4] srcid[4] maskid[4] dstr[4*4] srcp[2*4] maskp[2*4]
	a, err := d.bufimage(1 + 4 + 4 + 4 + 4*4 + 2*4 + 2*4)
	if err != nil {
		return err
	}
	a[0] = 'd'
	bplong(a[1:], dst.id)
	bplong(a[5:], src.id)
	bplong(a[9:], mask.id)
	bprect(a[13:], r)
	bppoint(a[29:], p)
	bppoint(a[37:], p)
	return nil
}
