package deconv

import (
	"fmt"

	"github.com/gogpu/deconv/internal/density"
	"github.com/gogpu/deconv/internal/parallel"
)

// UnmixPixel separates one RGB pixel into three stain intensities.
//
// Each channel is converted to optical density, projected through m and
// converted back to an 8-bit intensity. The function is pure; it may be
// called from any number of goroutines.
func UnmixPixel(m *Matrix, r, g, b uint8) (uint8, uint8, uint8) {
	d0, d1, d2 := m.Project(density.ToDensity(r), density.ToDensity(g), density.ToDensity(b))
	return density.ToIntensity(d0), density.ToIntensity(d1), density.ToIntensity(d2)
}

// Deconvolve separates src into three stain channels of the same size.
// The channels carry no display LUT; see Run or BuildDisplayLUTs.
func Deconvolve(src *RGBImage, m Matrix, opts ...Option) ([3]*Channel, error) {
	var outs [3]*Channel
	if src.empty() {
		return outs, ErrNilImage
	}
	for i := range outs {
		c, err := NewChannel(src.Width(), src.Height())
		if err != nil {
			return [3]*Channel{}, err
		}
		outs[i] = c
	}
	if err := DeconvolveInto(src, m, outs, opts...); err != nil {
		return [3]*Channel{}, err
	}
	return outs, nil
}

// DeconvolveInto writes the stain channels of src into caller-provided
// outputs, which must all match the size of src.
//
// Rows are processed in bands, in parallel unless WithWorkers(1) is given.
// When the run is cancelled through WithContext, the context error is
// returned and the outputs are partially written.
func DeconvolveInto(src *RGBImage, m Matrix, outs [3]*Channel, opts ...Option) error {
	if src.empty() {
		return ErrNilImage
	}
	for i, c := range outs {
		if !c.sameSize(src) {
			return fmt.Errorf("%w: channel %d", ErrDimensionMismatch, i)
		}
	}
	if !m.IsFinite() {
		return ErrSingularBasis
	}

	o := applyOptions(opts)
	bands := parallel.SplitRows(src.Height(), o.bandHeight)

	Logger().Debug("deconv: unmixing",
		"width", src.Width(), "height", src.Height(),
		"bands", len(bands), "workers", o.workers)

	fn := func(b parallel.Band) {
		unmixRows(src, &m, outs, b.Y0, b.Y1)
	}

	var err error
	if o.workers == 1 || len(bands) == 1 {
		err = parallel.Sequential(o.ctx, bands, fn)
	} else {
		pool := parallel.NewWorkerPool(min(o.workers, len(bands)))
		err = pool.ForEachBand(o.ctx, bands, fn)
		pool.Close()
	}
	if err != nil {
		return fmt.Errorf("deconv: unmix: %w", err)
	}
	return nil
}

// unmixRows processes rows [y0, y1).
func unmixRows(src *RGBImage, m *Matrix, outs [3]*Channel, y0, y1 int) {
	for y := y0; y < y1; y++ {
		in := src.Row(y)
		o0, o1, o2 := outs[0].Row(y), outs[1].Row(y), outs[2].Row(y)
		for x := range o0 {
			i := x * 3
			o0[x], o1[x], o2[x] = UnmixPixel(m, in[i], in[i+1], in[i+2])
		}
	}
}

// Result is the output of Run.
type Result struct {
	Basis    Basis
	Matrix   Matrix
	Channels [3]*Channel
}

// Run resolves seed, deconvolves src and attaches the display LUTs to the
// three output channels.
func Run(src *RGBImage, seed Seed, opts ...Option) (*Result, error) {
	if src.empty() {
		return nil, ErrNilImage
	}
	basis, m, err := Resolve(seed)
	if err != nil {
		return nil, fmt.Errorf("deconv: resolve %q: %w", seed.Name, err)
	}

	Logger().Info("deconv: run", "stain", seed.Name, "width", src.Width(), "height", src.Height())

	outs, err := Deconvolve(src, m, opts...)
	if err != nil {
		return nil, err
	}
	luts := BuildDisplayLUTs(basis)
	for i := range outs {
		outs[i].LUT = &luts[i]
	}
	return &Result{Basis: basis, Matrix: m, Channels: outs}, nil
}
