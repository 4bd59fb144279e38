package draw

import (
	"fmt"
	"strings"
)

// Pix is a Plan 9 channel descriptor. Each byte describes one channel,
// most significant byte first: the type in the high nibble and the
// depth in bits in the low nibble.
type Pix uint32

// Channel types.
const (
	CRed = iota
	CGreen
	CBlue
	CGrey
	CAlpha
	CMap
	CIgnore
)

// dc packs a single channel description.
func dc(typ, nbits int) Pix {
	return Pix((typ&15)<<4 | nbits&15)
}

// Standard channel descriptors.
var (
	GREY1  = dc(CGrey, 1)
	GREY8  = dc(CGrey, 8)
	CMAP8  = dc(CMap, 8)
	RGB24  = dc(CRed, 8)<<16 | dc(CGreen, 8)<<8 | dc(CBlue, 8)
	XRGB32 = dc(CIgnore, 8)<<24 | dc(CRed, 8)<<16 | dc(CGreen, 8)<<8 | dc(CBlue, 8)
	ARGB32 = dc(CAlpha, 8)<<24 | dc(CRed, 8)<<16 | dc(CGreen, 8)<<8 | dc(CBlue, 8)
)

// Color values for AllocImage, as 0xRRGGBBAA.
const (
	DOpaque = 0xFFFFFFFF
	DBlack  = 0x000000FF
	DWhite  = 0xFFFFFFFF
)

const channames = "rgbkamx"

// String returns the channel string, e.g. "x8r8g8b8".
func (p Pix) String() string {
	var b strings.Builder
	for shift := 24; shift >= 0; shift -= 8 {
		c := (p >> uint(shift)) & 0xFF
		if c == 0 {
			continue
		}
		t := int(c >> 4)
		n := int(c & 15)
		if t >= len(channames) || n == 0 {
			return ""
		}
		fmt.Fprintf(&b, "%c%d", channames[t], n)
	}
	return b.String()
}

// Depth returns the number of bits per pixel, or 0 for a malformed
// descriptor.
func (p Pix) Depth() int {
	depth := 0
	for c := p; c != 0; c >>= 8 {
		n := int(c & 15)
		if n == 0 {
			return 0
		}
		depth += n
	}
	if depth <= 0 || depth > 32 || 8%depth != 0 && depth%8 != 0 {
		return 0
	}
	return depth
}

// ParsePix parses a channel string such as "r8g8b8".
func ParsePix(s string) (Pix, error) {
	s = strings.TrimSpace(s)
	var p Pix
	n := 0
	for len(s) > 0 {
		t := strings.IndexByte(channames, s[0])
		if t < 0 {
			return 0, fmt.Errorf("draw: bad channel %q", s[0])
		}
		s = s[1:]
		bits := 0
		for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			bits = bits*10 + int(s[0]-'0')
			s = s[1:]
		}
		if bits < 1 || bits > 8 {
			return 0, fmt.Errorf("draw: bad channel depth %d", bits)
		}
		p = p<<8 | dc(t, bits)
		if n++; n > 4 {
			return 0, fmt.Errorf("draw: too many channels")
		}
	}
	if p == 0 || p.Depth() == 0 {
		return 0, fmt.Errorf("draw: bad channel descriptor")
	}
	return p, nil
}

// bytesPerLine returns the number of bytes in one row of r at depth d.
func bytesPerLine(dx, depth int) int {
	return (dx*depth + 7) / 8
}
