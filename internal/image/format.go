package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit single channel (1 byte per pixel).
	// Deconvolved stain channels use this format.
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	// Source brightfield images are packed into this format.
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

var bytesPerPixel = [formatCount]int{
	FormatGray8: 1,
	FormatRGB8:  3,
}

// BytesPerPixel returns the number of bytes per pixel for this format,
// or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return bytesPerPixel[f]
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}
