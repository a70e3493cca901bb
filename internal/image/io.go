package image

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when the file extension has no encoder.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Decode decodes an image from r, auto-detecting PNG, JPEG, TIFF or BMP,
// and packs it into an RGB8 buffer.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	buf := FromStdImage(img)
	if buf == nil {
		return nil, ErrInvalidDimensions
	}
	return buf, nil
}

// LoadImage reads and decodes the image file at path into an RGB8 buffer.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Encode writes img to w in the named format ("png", "jpeg", "tiff", "bmp").
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch strings.ToLower(format) {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// FormatFromPath returns the encoder name implied by the file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// SaveImage encodes img to path, choosing the encoder from the extension.
func SaveImage(path string, img image.Image) error {
	format := FormatFromPath(path)
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff", "bmp":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
