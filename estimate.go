package deconv

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/deconv/internal/density"
)

// EstimateStain measures a stain vector from a region of img that contains
// only that stain. The result is the mean optical density of each channel
// over the pixels of r that lie inside the image. It is not normalized;
// Resolve does that.
//
// Returns ErrEmptyRegion when r does not overlap the image.
func EstimateStain(img *RGBImage, r image.Rectangle) (Vector, error) {
	if img.empty() {
		return Vector{}, ErrNilImage
	}
	r = r.Canon().Intersect(img.Bounds())
	if r.Empty() {
		return Vector{}, ErrEmptyRegion
	}

	table := density.Table()
	region := img.buf.SubImage(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	n := r.Dx() * r.Dy()
	od := [3][]float64{
		make([]float64, 0, n),
		make([]float64, 0, n),
		make([]float64, 0, n),
	}
	for y := 0; y < region.Height(); y++ {
		row := region.RowBytes(y)
		for x := 0; x+2 < len(row); x += 3 {
			od[R] = append(od[R], table[row[x]])
			od[G] = append(od[G], table[row[x+1]])
			od[B] = append(od[B], table[row[x+2]])
		}
	}

	return Vector{
		stat.Mean(od[R], nil),
		stat.Mean(od[G], nil),
		stat.Mean(od[B], nil),
	}, nil
}

// EstimateSeed builds a seed from up to three single-stain regions, in
// stain order. Stains without a region are left zero so Resolve
// synthesizes them.
func EstimateSeed(name string, img *RGBImage, regions ...image.Rectangle) (Seed, error) {
	if len(regions) > 3 {
		return Seed{}, fmt.Errorf("deconv: %d regions given, at most 3 stains", len(regions))
	}
	seed := Seed{Name: name}
	for i, r := range regions {
		v, err := EstimateStain(img, r)
		if err != nil {
			return Seed{}, fmt.Errorf("deconv: estimate stain %d from %v: %w", i+1, r, err)
		}
		seed.Stains[i] = v
	}
	Logger().Debug("deconv: estimated seed", "name", name, "seed", seed.String())
	return seed, nil
}
