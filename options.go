package deconv

import (
	"context"
	"runtime"
)

// Option configures a deconvolution run.
//
// Example:
//
//	// Default: one worker per CPU, 32-row bands
//	outs, err := deconv.Deconvolve(img, m)
//
//	// Single-threaded, cancellable
//	outs, err := deconv.Deconvolve(img, m, deconv.WithWorkers(1), deconv.WithContext(ctx))
type Option func(*options)

// options holds optional configuration for a run.
type options struct {
	ctx        context.Context
	workers    int
	bandHeight int
}

// defaultOptions returns the default run options.
func defaultOptions() options {
	return options{
		ctx:        context.Background(),
		workers:    0, // GOMAXPROCS
		bandHeight: 0, // parallel.DefaultBandHeight
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// WithWorkers sets the number of goroutines that process row bands.
// Zero or a negative value uses GOMAXPROCS; 1 runs on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBandHeight sets the number of image rows per unit of work.
// Zero or a negative value uses the default.
func WithBandHeight(rows int) Option {
	return func(o *options) {
		o.bandHeight = rows
	}
}

// WithContext lets the caller cancel a run. Cancellation is checked between
// bands; bands already started complete. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
