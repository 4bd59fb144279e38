package qr

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/elizafairlady/qrjelly/draw"
	"github.com/elizafairlady/qrjelly/internal/fileutil"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("qr: unsupported image format")

// Formats lists the extensions WriteFile understands.
var Formats = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".bit"}

// Encode writes img to w in the format named by ext.
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case ".bit":
		return draw.WriteImage(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// WriteFile writes img to path in the format implied by its extension.
// The file is replaced atomically; a failed write leaves nothing behind.
func WriteFile(path string, img image.Image) error {
	ext := filepath.Ext(path)
	if !slices.Contains(Formats, strings.ToLower(ext)) {
		return fmt.Errorf("qr: write %s: %w", path, ErrUnsupportedFormat)
	}
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, ext, img)
	})
	if err != nil {
		return fmt.Errorf("qr: write %s: %w", path, err)
	}
	return nil
}
