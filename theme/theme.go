// Package theme defines the visual style of the QR Jelly window:
// colors for the chrome and widgets, metrics, and font sizes.
package theme

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the visual style defaults for rendering.
type Theme struct {
	// Window
	Backdrop color.RGBA // what the translucent fill is composited over
	Fill     color.NRGBA // rounded panel fill, straight alpha
	Radius   int

	// Control buttons
	Minimize      color.RGBA
	MinimizeHover color.RGBA
	MinimizeRing  color.RGBA
	Close         color.RGBA
	CloseHover    color.RGBA
	CloseRing     color.RGBA
	ControlSize   int // diameter
	ControlMargin int
	ControlGap    int
	RingW         int

	// Widgets. Straight alpha, like the window fill.
	Text       color.NRGBA
	DimText    color.NRGBA
	ErrText    color.NRGBA
	ButtonBg   color.NRGBA
	ButtonHigh color.NRGBA
	ButtonOff  color.NRGBA
	InputBg    color.NRGBA
	InputFg    color.NRGBA
	FocusRing  color.NRGBA
	Border     color.NRGBA
	Overlay    color.NRGBA // dims the window behind dialogs

	// Metrics (in pixels)
	Margin       Insets // outer margins of the panel
	Gap          int    // spacing between rows
	ContentTop   int    // extra space above the content region
	Pad          int    // padding inside buttons and inputs
	WidgetRadius int
	SwatchSize   int
	PreviewSize  int

	// Font sizes (in points at 72 dpi, i.e. pixels)
	FontSize  float64
	TitleSize float64
}

// Insets mirrors layout.Insets so the theme has no layout dependency.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Default returns the Jelly theme: a dark purple glass panel with
// macOS-style traffic light controls.
func Default() *Theme {
	return &Theme{
		Backdrop: MustParse("#777777"),
		Fill:     color.NRGBA{34, 9, 56, 217},
		Radius:   15,

		Minimize:      MustParse("#FFB700"),
		MinimizeHover: MustParse("#FFC800"),
		MinimizeRing:  MustParse("#FFD700"),
		Close:         MustParse("#FF5F57"),
		CloseHover:    MustParse("#FF6F69"),
		CloseRing:     MustParse("#FF8C8A"),
		ControlSize:   14,
		ControlMargin: 5,
		ControlGap:    5,
		RingW:         2,

		Text:       color.NRGBA{255, 255, 255, 255},
		DimText:    color.NRGBA{255, 255, 255, 140},
		ErrText:    color.NRGBA(MustParse("#FF8C8A")),
		ButtonBg:   color.NRGBA{24, 6, 40, 217},
		ButtonHigh: color.NRGBA{44, 16, 70, 217},
		ButtonOff:  color.NRGBA{24, 6, 40, 120},
		InputBg:    color.NRGBA{24, 6, 40, 217},
		InputFg:    color.NRGBA{255, 255, 255, 255},
		FocusRing:  color.NRGBA(MustParse("#C9A7FF")),
		Border:     color.NRGBA{255, 255, 255, 100},
		Overlay:    color.NRGBA{0, 0, 0, 140},

		Margin:       Insets{Left: 20, Top: 10, Right: 20, Bottom: 20},
		Gap:          10,
		ContentTop:   5,
		Pad:          6,
		WidgetRadius: 5,
		SwatchSize:   30,
		PreviewSize:  300,

		FontSize:  14,
		TitleSize: 15,
	}
}

// Parse parses a color in #rgb or #rrggbb form.
func Parse(s string) (color.RGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("theme: %q is not a hex color", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xFF}, nil
}

// MustParse is like Parse but panics on malformed input.
// It is meant for constants.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic("theme: " + err.Error())
	}
	return c
}

// Over composites the straight-alpha color c over the opaque color bg.
func Over(c color.NRGBA, bg color.RGBA) color.RGBA {
	a := uint32(c.A)
	mix := func(f, b uint8) uint8 {
		return uint8((uint32(f)*a + uint32(b)*(255-a) + 127) / 255)
	}
	return color.RGBA{mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B), 0xFF}
}
