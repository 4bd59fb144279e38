package libui

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the faces used by views.
type Fonts struct {
	Regular text.Face
	Bold    text.Face
}

// LoadFonts builds Go Regular and Go Bold faces at the given sizes.
func LoadFonts(size, boldSize float64) (*Fonts, error) {
	reg, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("libui: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("libui: load bold font: %w", err)
	}
	return &Fonts{
		Regular: reg.Face(size),
		Bold:    bold.Face(boldSize),
	}, nil
}

// Face returns the bold or regular face. It returns nil on a nil *Fonts.
func (f *Fonts) Face(bold bool) text.Face {
	if f == nil {
		return nil
	}
	if bold {
		return f.Bold
	}
	return f.Regular
}

// Measure returns the size of s in face, rounded up to whole pixels.
// Without a face it estimates 7×14 pixels per rune.
func Measure(face text.Face, s string) (w, h int) {
	if face == nil {
		return 7 * len([]rune(s)), 14
	}
	fw, fh := text.Measure(s, face)
	return int(fw + 0.999), int(fh + 0.999)
}
