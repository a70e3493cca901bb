package deconv

import (
	"fmt"
	"image"

	imgbuf "github.com/gogpu/deconv/internal/image"
)

// RGBImage is a packed 8-bit RGB pixel grid, the input to Deconvolve.
//
// RGBImage is safe for concurrent reads.
type RGBImage struct {
	buf *imgbuf.ImageBuf
}

// NewRGBImage allocates a black image.
func NewRGBImage(width, height int) (*RGBImage, error) {
	buf, err := imgbuf.NewImageBuf(width, height, imgbuf.FormatRGB8)
	if err != nil {
		return nil, fmt.Errorf("deconv: new image %dx%d: %w", width, height, err)
	}
	return &RGBImage{buf: buf}, nil
}

// RGBImageFromPacked wraps pix, three bytes per pixel with no row padding,
// without copying.
func RGBImageFromPacked(pix []byte, width, height int) (*RGBImage, error) {
	buf, err := imgbuf.FromRaw(pix, width, height, imgbuf.FormatRGB8, width*3)
	if err != nil {
		return nil, fmt.Errorf("deconv: wrap %dx%d pixels: %w", width, height, err)
	}
	return &RGBImage{buf: buf}, nil
}

// RGBImageFromStd copies a standard library image. Alpha is discarded and
// colour values are taken as stored.
func RGBImageFromStd(img image.Image) (*RGBImage, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	buf := imgbuf.FromStdImage(img)
	if buf == nil {
		return nil, fmt.Errorf("deconv: convert %v: %w", img.Bounds(), imgbuf.ErrInvalidDimensions)
	}
	return &RGBImage{buf: buf}, nil
}

// empty reports whether m is nil or has no pixel storage, as with a zero
// RGBImage.
func (m *RGBImage) empty() bool { return m == nil || m.buf == nil }

// Width returns the image width in pixels.
func (m *RGBImage) Width() int { return m.buf.Width() }

// Height returns the image height in pixels.
func (m *RGBImage) Height() int { return m.buf.Height() }

// Bounds returns the image rectangle, anchored at the origin.
func (m *RGBImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.buf.Width(), m.buf.Height())
}

// RGB returns the pixel at (x, y), or black when out of bounds.
func (m *RGBImage) RGB(x, y int) (r, g, b uint8) {
	return m.buf.RGB(x, y)
}

// SetRGB sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (m *RGBImage) SetRGB(x, y int, r, g, b uint8) {
	_ = m.buf.SetRGB(x, y, r, g, b)
}

// Row returns the packed bytes of row y.
func (m *RGBImage) Row(y int) []byte {
	return m.buf.RowBytes(y)
}

// Std returns a copy of the image as an opaque *image.NRGBA.
func (m *RGBImage) Std() image.Image {
	return m.buf.ToStdImage()
}

// Channel is one 8-bit output of Deconvolve: the reconstructed intensity
// of a single stain. LUT, when set, pseudo-colours the channel for display.
type Channel struct {
	buf *imgbuf.ImageBuf

	// LUT colours the channel in Paletted. Nil means gray.
	LUT *DisplayLUT
}

// NewChannel allocates a zeroed channel.
func NewChannel(width, height int) (*Channel, error) {
	buf, err := imgbuf.NewImageBuf(width, height, imgbuf.FormatGray8)
	if err != nil {
		return nil, fmt.Errorf("deconv: new channel %dx%d: %w", width, height, err)
	}
	return &Channel{buf: buf}, nil
}

// Width returns the channel width in pixels.
func (c *Channel) Width() int { return c.buf.Width() }

// Height returns the channel height in pixels.
func (c *Channel) Height() int { return c.buf.Height() }

// Intensity returns the sample at (x, y), or 0 when out of bounds.
func (c *Channel) Intensity(x, y int) uint8 {
	return c.buf.Gray(x, y)
}

// Row returns the samples of row y.
func (c *Channel) Row(y int) []byte {
	return c.buf.RowBytes(y)
}

// Gray returns a copy of the raw intensities.
func (c *Channel) Gray() *image.Gray {
	return c.buf.ToStdImage().(*image.Gray)
}

// Paletted returns a copy of the channel coloured by its LUT, or by a gray
// ramp when no LUT is attached.
func (c *Channel) Paletted() *image.Paletted {
	lut := c.LUT
	if lut == nil {
		gray := GrayLUT()
		lut = &gray
	}
	return c.buf.Paletted(lut.Palette())
}

// Image returns the display form of the channel: Paletted when a LUT is
// attached, Gray otherwise.
func (c *Channel) Image() image.Image {
	if c.LUT != nil {
		return c.Paletted()
	}
	return c.Gray()
}

func (c *Channel) sameSize(m *RGBImage) bool {
	return c != nil && c.buf != nil && !m.empty() && c.buf.SameSize(m.buf)
}
