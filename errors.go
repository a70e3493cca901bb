package deconv

import "errors"

var (
	// ErrSingularBasis is returned by Resolve when the stain basis cannot be
	// inverted: the first stain's red component, or one of the intermediate
	// elimination terms, is exactly zero. The run cannot proceed with this
	// basis; supply different stain vectors.
	ErrSingularBasis = errors.New("deconv: singular stain basis")

	// ErrNilImage is returned when a source image is nil or has no pixels,
	// as with a zero RGBImage.
	ErrNilImage = errors.New("deconv: nil image")

	// ErrDimensionMismatch is returned when output channels do not match the
	// source image size.
	ErrDimensionMismatch = errors.New("deconv: output size does not match source")

	// ErrEmptyRegion is returned when a sampling region has no pixels
	// inside the image.
	ErrEmptyRegion = errors.New("deconv: empty region")

	// ErrMalformedSeed reports a stain definition line that does not have
	// exactly ten comma-separated fields with numeric vector components.
	ErrMalformedSeed = errors.New("deconv: malformed stain definition")
)
