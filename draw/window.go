package draw

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"strings"
)

// GetWindow looks up the window image named in /dev/winname and makes
// it d.Window. Without a window system the display image is used.
// Call it again after a resize.
func (d *Display) GetWindow() error {
	name, err := os.ReadFile(d.devdir + "/winname")
	if errors.Is(err, fs.ErrNotExist) {
		d.Window = d.Image
		return nil
	}
	if err != nil {
		return fmt.Errorf("draw: read winname: %w", err)
	}
	old := d.Window
	w, err := d.namedImage(strings.TrimSpace(string(name)))
	if err != nil {
		return err
	}
	if old != nil && old != d.Image {
		old.Free()
	}
	d.Window = w
	return nil
}

// namedImage attaches to the public image called name.
func (d *Display) namedImage(name string) (*Image, error) {
	if len(name) == 0 || len(name) >= 256 {
		return nil, fmt.Errorf("draw: bad image name %q", name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}

	// Flush pending data so errors are reported against this message.
	if err := d.doflush(); err != nil {
		return nil, err
	}
	d.imageid++
	id := d.imageid

	// n id[4] j[1] name[j]
	a, err := d.bufimage(1 + 4 + 1 + len(name))
	if err != nil {
		return nil, err
	}
	a[0] = 'n'
	bplong(a[1:], id)
	a[5] = byte(len(name))
	copy(a[6:], name)
	if err := d.doflush(); err != nil {
		return nil, fmt.Errorf("draw: name %q: %w", name, err)
	}

	buf := make([]byte, 12*12)
	n, err := d.ctlfd.ReadAt(buf, 0)
	if n < 12*12 {
		if err == nil {
			err = fmt.Errorf("short read %d", n)
		}
		return nil, fmt.Errorf("draw: name %q: read ctl: %w", name, err)
	}
	info, err := parseInfo(string(buf[:n]))
	if err != nil {
		return nil, err
	}
	return &Image{
		Display: d,
		id:      id,
		Pix:     info.pix,
		R:       info.r,
		Clipr:   info.clipr,
		Repl:    info.repl,
	}, nil
}

// Inner returns the part of the window inside rio's border.
func (d *Display) Inner() image.Rectangle {
	if d.Window == nil {
		return image.Rectangle{}
	}
	if d.Window == d.Image {
		return d.Window.R
	}
	return d.Window.R.Inset(Borderwidth)
}
