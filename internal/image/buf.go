// Package image provides the packed pixel buffers and file codecs used by
// the deconvolution engine and its command-line host.
//
// Buffers are contiguous byte slices with a row stride. Sub-images share
// storage with their parent, so disjoint row bands of one buffer can be
// written from different goroutines without copying.
package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized or does
	// not support the operation.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a packed image buffer.
//
// Thread safety: ImageBuf is safe for concurrent reads. Writers must not
// touch the same rows concurrently.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a zeroed buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying.
// The caller must keep data valid for the lifetime of the ImageBuf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	required := (height-1)*stride + format.RowBytes(width)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns the pixel bytes of row y, without padding.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// RGB returns the color at (x, y) of an RGB8 buffer.
// Returns (0,0,0) if coordinates are out of bounds or the buffer is not RGB8.
func (b *ImageBuf) RGB(x, y int) (r, g, bl uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 || b.format != FormatRGB8 {
		return 0, 0, 0
	}
	return b.data[off], b.data[off+1], b.data[off+2]
}

// SetRGB sets the color at (x, y) of an RGB8 buffer.
func (b *ImageBuf) SetRGB(x, y int, r, g, bl uint8) error {
	if b.format != FormatRGB8 {
		return ErrInvalidFormat
	}
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	b.data[off] = r
	b.data[off+1] = g
	b.data[off+2] = bl
	return nil
}

// Gray returns the first byte of pixel (x, y), or 0 when out of bounds.
func (b *ImageBuf) Gray(x, y int) uint8 {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0
	}
	return b.data[off]
}

// SubImage returns a view into a rectangular region of the image.
// The view shares storage with b.
// Returns nil if the region is empty or not fully inside the image.
func (b *ImageBuf) SubImage(x, y, width, height int) *ImageBuf {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}

	bpp := b.format.BytesPerPixel()
	offset := y*b.stride + x*bpp
	end := (y+height-1)*b.stride + (x+width)*bpp

	return &ImageBuf{
		data:   b.data[offset:end],
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
	}
}

// SameSize reports whether b and other have identical dimensions.
func (b *ImageBuf) SameSize(other *ImageBuf) bool {
	return other != nil && b.width == other.width && b.height == other.height
}
