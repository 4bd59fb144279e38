package qr

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// Print writes text to w as a QR code drawn with half block characters.
func Print(w io.Writer, text string, level Level) error {
	if text == "" {
		return ErrEmptyText
	}
	qrterminal.GenerateHalfBlock(text, rscLevel(level), w)
	return nil
}
