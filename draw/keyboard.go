package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Keyboardctl delivers runes typed at the console.
type Keyboardctl struct {
	C chan rune

	cons    io.ReadCloser
	consctl io.WriteCloser
}

// InitKeyboard opens /dev/cons in raw mode and starts reading it.
// Raw mode lasts as long as /dev/consctl stays open.
func InitKeyboard() (*Keyboardctl, error) {
	cons, err := os.Open("/dev/cons")
	if err != nil {
		return nil, fmt.Errorf("draw: init keyboard: %w", err)
	}
	ctl, err := os.OpenFile("/dev/consctl", os.O_WRONLY, 0)
	if err != nil {
		cons.Close()
		return nil, fmt.Errorf("draw: init keyboard: %w", err)
	}
	if _, err := io.WriteString(ctl, "rawon"); err != nil {
		ctl.Close()
		cons.Close()
		return nil, fmt.Errorf("draw: rawon: %w", err)
	}
	return newKeyboardctl(cons, ctl), nil
}

func newKeyboardctl(cons io.ReadCloser, consctl io.WriteCloser) *Keyboardctl {
	kc := &Keyboardctl{
		C:       make(chan rune, 32),
		cons:    cons,
		consctl: consctl,
	}
	go kc.readproc()
	return kc
}

func (kc *Keyboardctl) readproc() {
	defer close(kc.C)
	br := bufio.NewReader(kc.cons)
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return
		}
		kc.C <- r
	}
}

// Close leaves raw mode and stops reading.
func (kc *Keyboardctl) Close() error {
	if kc.consctl != nil {
		io.WriteString(kc.consctl, "rawoff")
		kc.consctl.Close()
	}
	return kc.cons.Close()
}

// Special keys as delivered by the Plan 9 console.
const (
	KeyHome      = 0xF00D
	KeyUp        = 0xF00E
	KeyPgup      = 0xF00F
	KeyPrint     = 0xF010
	KeyLeft      = 0xF011
	KeyRight     = 0xF012
	KeyDown      = 0xF800
	KeyView      = 0xF800
	KeyPgdown    = 0xF013
	KeyInsert    = 0xF014
	KeyEnd       = 0xF018
	KeyBackspace = 0x08
	KeyDelete    = 0x7F
	KeyEscape    = 0x1B
	KeyEOF       = 0x04
	KeyNAK       = 0x15 // ^U
	KeySyn       = 0x16 // ^V
	KeyETB       = 0x17 // ^W
)
