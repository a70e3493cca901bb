// Package parallel runs row-band work over an image on a pool of goroutines.
//
// An image is split into horizontal bands of whole rows. Bands never overlap,
// so workers that read a shared source and write only their own rows of the
// destination need no locking.
package parallel

import (
	"context"
	"errors"
)

// DefaultBandHeight is the number of rows per band when none is given.
const DefaultBandHeight = 32

// ErrPoolClosed is returned when work is submitted to a closed pool.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// SplitRows divides height rows into consecutive bands of at most
// bandHeight rows. The last band may be shorter.
// A non-positive bandHeight uses DefaultBandHeight.
func SplitRows(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}

	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		end := y + bandHeight
		if end > height {
			end = height
		}
		bands = append(bands, Band{Y0: y, Y1: end})
	}
	return bands
}

// ForEachBand runs fn once per band on the pool and waits for completion.
//
// Bands not yet started when ctx is cancelled are skipped. The context error
// is returned only when a band was skipped, so a run that finished every
// band reports success even if ctx was cancelled afterwards. A band that has
// started always runs to completion.
func (p *WorkerPool) ForEachBand(ctx context.Context, bands []Band, fn func(Band)) error {
	if !p.IsRunning() {
		return ErrPoolClosed
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		b := b
		work[i] = func() { fn(b) }
	}
	if p.ExecuteAll(ctx, work) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrPoolClosed
}

// Sequential runs fn over bands in order on the calling goroutine,
// checking ctx between bands.
func Sequential(ctx context.Context, bands []Band, fn func(Band)) error {
	for _, b := range bands {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(b)
	}
	return nil
}
