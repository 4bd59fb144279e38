package draw

import (
	"fmt"
	"image"
	"io"
	"os"
)

// Mouse is a decoded mouse message. Point is in screen coordinates.
type Mouse struct {
	image.Point
	Buttons int
	Msec    uint32
}

// Mousectl delivers mouse and resize messages from /dev/mouse.
type Mousectl struct {
	C      chan Mouse
	Resize chan bool

	r io.ReadCloser
}

// mouseMsgSize is the size of an 'm' message: 'm' x[12] y[12] buttons[12] msec[12].
const mouseMsgSize = 1 + 4*12

// InitMouse opens /dev/mouse and starts reading it.
func InitMouse() (*Mousectl, error) {
	f, err := os.Open("/dev/mouse")
	if err != nil {
		return nil, fmt.Errorf("draw: init mouse: %w", err)
	}
	return newMousectl(f), nil
}

func newMousectl(r io.ReadCloser) *Mousectl {
	mc := &Mousectl{
		C:      make(chan Mouse, 16),
		Resize: make(chan bool, 2),
		r:      r,
	}
	go mc.readproc()
	return mc
}

func (mc *Mousectl) readproc() {
	defer close(mc.C)
	buf := make([]byte, mouseMsgSize)
	for {
		n, err := mc.r.Read(buf)
		if err != nil {
			return
		}
		m, kind, ok := parseMouse(buf[:n])
		if !ok {
			continue
		}
		switch kind {
		case 'm':
			mc.C <- m
		case 'r':
			select {
			case mc.Resize <- true:
			default:
			}
			// A resize message carries the current mouse state too.
			mc.C <- m
		}
	}
}

// parseMouse decodes one /dev/mouse message.
func parseMouse(b []byte) (Mouse, byte, bool) {
	if len(b) < mouseMsgSize || (b[0] != 'm' && b[0] != 'r') {
		return Mouse{}, 0, false
	}
	m := Mouse{
		Point:   image.Pt(atoiField(b[1:13]), atoiField(b[13:25])),
		Buttons: atoiField(b[25:37]),
		Msec:    uint32(atoiField(b[37:49])),
	}
	return m, b[0], true
}

// Close stops reading the mouse.
func (mc *Mousectl) Close() error {
	return mc.r.Close()
}
