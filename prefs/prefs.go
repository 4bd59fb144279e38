// Package prefs persists the foreground/background color pair.
//
// The file is a flat JSON object:
//
//	{"foreground_color": "#000000", "background_color": "#ffffff"}
//
// Missing or unreadable files and missing or malformed fields fall
// back to black on white, field by field.
package prefs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/elizafairlady/qrjelly/internal/fileutil"
	"github.com/elizafairlady/qrjelly/theme"
)

// DefaultPath is the preference file used when none is configured.
const DefaultPath = "qr_jelly_colors.json"

// Colors is the color pair used to draw QR codes.
type Colors struct {
	Foreground color.RGBA
	Background color.RGBA
}

// Default returns black on white.
func Default() Colors {
	return Colors{
		Foreground: color.RGBA{0, 0, 0, 0xFF},
		Background: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
}

// Swapped returns c with foreground and background exchanged.
func (c Colors) Swapped() Colors {
	return Colors{Foreground: c.Background, Background: c.Foreground}
}

type fileColors struct {
	Foreground string `json:"foreground_color"`
	Background string `json:"background_color"`
}

// Load reads the color pair from path. It never fails: problems are
// logged at debug level and the affected fields take their defaults.
func Load(path string, log *slog.Logger) Colors {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug("prefs: using defaults", "path", path, "err", err)
		return c
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		log.Debug("prefs: malformed file, using defaults", "path", path, "err", err)
		return c
	}
	field := func(key string, dst *color.RGBA) {
		raw, ok := fields[key]
		if !ok {
			return
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			log.Debug("prefs: malformed field", "field", key, "err", err)
			return
		}
		v, err := theme.Parse(s)
		if err != nil {
			log.Debug("prefs: malformed color", "field", key, "value", s, "err", err)
			return
		}
		*dst = v
	}
	field("foreground_color", &c.Foreground)
	field("background_color", &c.Background)
	return c
}

// Save writes c to path, replacing the file atomically.
func Save(path string, c Colors) error {
	data, err := json.MarshalIndent(fileColors{
		Foreground: Hex(c.Foreground),
		Background: Hex(c.Background),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	data = append(data, '\n')
	err = fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}

// Hex formats c as #rrggbb in lower case. Alpha is ignored.
func Hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
