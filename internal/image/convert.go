package image

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromStdImage packs a standard library image into an RGB8 buffer.
//
// Alpha is dropped. Stored color values are copied as is for *image.RGBA
// and *image.NRGBA sources; other image types are first rendered onto an
// *image.RGBA with draw.Src.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf, err := NewImageBuf(width, height, FormatRGB8)
	if err != nil {
		return nil
	}

	var pix []byte
	var stride int
	switch src := img.(type) {
	case *image.RGBA:
		pix, stride = src.Pix, src.Stride
	case *image.NRGBA:
		pix, stride = src.Pix, src.Stride
	default:
		rgba := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
		pix, stride = rgba.Pix, rgba.Stride
	}

	for y := 0; y < height; y++ {
		src := pix[y*stride : y*stride+width*4]
		dst := buf.RowBytes(y)
		for x := 0; x < width; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}

	return buf
}

// ToStdImage converts the buffer to a standard library image.
// Gray8 becomes *image.Gray and RGB8 becomes an opaque *image.NRGBA.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := 0; y < b.height; y++ {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray

	default:
		nrgba := image.NewNRGBA(rect)
		for y := 0; y < b.height; y++ {
			row := b.RowBytes(y)
			dst := nrgba.Pix[y*nrgba.Stride:]
			for x := 0; x < b.width; x++ {
				dst[x*4] = row[x*3]
				dst[x*4+1] = row[x*3+1]
				dst[x*4+2] = row[x*3+2]
				dst[x*4+3] = 255
			}
		}
		return nrgba
	}
}

// Paletted returns an 8-bit indexed view of a Gray8 buffer using the given
// palette. The pixel bytes are copied, so later writes to b are not visible.
// Returns nil for other formats.
func (b *ImageBuf) Paletted(p color.Palette) *image.Paletted {
	if b.format != FormatGray8 {
		return nil
	}
	img := image.NewPaletted(image.Rect(0, 0, b.width, b.height), p)
	for y := 0; y < b.height; y++ {
		copy(img.Pix[y*img.Stride:], b.RowBytes(y))
	}
	return img
}
