// Package qr turns text into QR code images.
//
// Symbols come from one of two encoding libraries and are rasterized
// here, so both backends produce identical images for the same grid.
package qr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	rscqr "rsc.io/qr"
)

// ErrEmptyText is returned when asked to encode an empty string.
var ErrEmptyText = errors.New("qr: empty text")

// Level is an error correction level.
type Level int

const (
	L Level = iota // 7%
	M              // 15%
	Q              // 25%
	H              // 30%
)

func (l Level) String() string {
	if l < L || l > H {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return "LMQH"[l : l+1]
}

// ParseLevel parses "L", "M", "Q" or "H", case insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L", "LOW":
		return L, nil
	case "M", "MEDIUM", "":
		return M, nil
	case "Q", "HIGH":
		return Q, nil
	case "H", "HIGHEST":
		return H, nil
	}
	return M, fmt.Errorf("qr: unknown level %q", s)
}

// Symbol is an encoded QR symbol without its quiet zone.
type Symbol interface {
	Size() int
	Black(x, y int) bool
}

// Backend encodes text into a symbol.
type Backend interface {
	Name() string
	Encode(text string, level Level) (Symbol, error)
}

// Backend names accepted by NewBackend.
const (
	Skip2 = "skip2"
	RSC   = "rsc"
)

// NewBackend returns the backend called name. The empty name selects
// the default.
func NewBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "", Skip2:
		return skip2Backend{}, nil
	case RSC:
		return rscBackend{}, nil
	}
	return nil, fmt.Errorf("qr: unknown backend %q", name)
}

type skip2Backend struct{}

func (skip2Backend) Name() string { return Skip2 }

func (skip2Backend) Encode(text string, level Level) (Symbol, error) {
	q, err := qrcode.New(text, skip2Level(level))
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	return trimmed(q.Bitmap(), 4*q.VersionNumber+17), nil
}

// trimmed cuts the quiet zone from a bitmap whose symbol is size
// modules wide.
func trimmed(b [][]bool, size int) bitmap {
	off := (len(b) - size) / 2
	if off <= 0 {
		return bitmap(b)
	}
	out := make(bitmap, size)
	for y := range out {
		out[y] = b[off+y][off : off+size]
	}
	return out
}

func skip2Level(l Level) qrcode.RecoveryLevel {
	switch l {
	case L:
		return qrcode.Low
	case Q:
		return qrcode.High
	case H:
		return qrcode.Highest
	}
	return qrcode.Medium
}

// bitmap is a square module grid indexed [y][x].
type bitmap [][]bool

func (b bitmap) Size() int { return len(b) }

func (b bitmap) Black(x, y int) bool {
	return y >= 0 && y < len(b) && x >= 0 && x < len(b[y]) && b[y][x]
}

type rscBackend struct{}

func (rscBackend) Name() string { return RSC }

func (rscBackend) Encode(text string, level Level) (Symbol, error) {
	c, err := rscqr.Encode(text, rscLevel(level))
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	return rscSymbol{c}, nil
}

func rscLevel(l Level) rscqr.Level {
	switch l {
	case L:
		return rscqr.L
	case Q:
		return rscqr.Q
	case H:
		return rscqr.H
	}
	return rscqr.M
}

type rscSymbol struct{ c *rscqr.Code }

func (s rscSymbol) Size() int           { return s.c.Size }
func (s rscSymbol) Black(x, y int) bool { return s.c.Black(x, y) }

// Params controls encoding and rasterization.
type Params struct {
	Backend    string
	Level      Level
	ModuleSize int // pixels per module
	Border     int // quiet zone, in modules
}

// DefaultParams returns module size 10, a four module border and
// level M on the default backend.
func DefaultParams() Params {
	return Params{
		Backend:    Skip2,
		Level:      M,
		ModuleSize: 10,
		Border:     4,
	}
}

// Encoder renders text to images.
type Encoder struct {
	Params Params
}

// NewEncoder returns an encoder using p. Zero sizes take the defaults.
func NewEncoder(p Params) *Encoder {
	d := DefaultParams()
	if p.ModuleSize <= 0 {
		p.ModuleSize = d.ModuleSize
	}
	if p.Border < 0 {
		p.Border = d.Border
	}
	return &Encoder{Params: p}
}

// Encode encodes text and rasterizes it with fg modules on bg.
func (e *Encoder) Encode(text string, fg, bg color.Color) (*image.Paletted, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	b, err := NewBackend(e.Params.Backend)
	if err != nil {
		return nil, err
	}
	sym, err := b.Encode(text, e.Params.Level)
	if err != nil {
		return nil, err
	}
	return Rasterize(sym, e.Params.ModuleSize, e.Params.Border, fg, bg), nil
}

// Rasterize draws sym at moduleSize pixels per module surrounded by
// border modules of background. Palette index 0 is bg and 1 is fg.
func Rasterize(sym Symbol, moduleSize, border int, fg, bg color.Color) *image.Paletted {
	n := (sym.Size() + 2*border) * moduleSize
	img := image.NewPaletted(image.Rect(0, 0, n, n), color.Palette{bg, fg})
	for my := 0; my < sym.Size(); my++ {
		for mx := 0; mx < sym.Size(); mx++ {
			if !sym.Black(mx, my) {
				continue
			}
			x0 := (mx + border) * moduleSize
			y0 := (my + border) * moduleSize
			for y := y0; y < y0+moduleSize; y++ {
				row := img.Pix[img.PixOffset(x0, y):]
				for x := range moduleSize {
					row[x] = 1
				}
			}
		}
	}
	return img
}
