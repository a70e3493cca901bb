// Package deconv separates brightfield microscopy images into per-stain
// intensity images using the optical-density unmixing method of Ruifrok and
// Johnston ("colour deconvolution").
//
// # Overview
//
// A stained slide absorbs light according to the Beer-Lambert law, so in
// optical-density space the contributions of up to three dyes add linearly.
// Given a reference colour for each dye, deconv builds the inverse of the
// stain matrix and projects every pixel onto the three stains.
//
// # Quick Start
//
//	import "github.com/gogpu/deconv"
//
//	img, _ := deconv.RGBImageFromStd(decoded)
//	res, err := deconv.Run(img, deconv.LookupPreset("H DAB"))
//	if err != nil {
//		return err
//	}
//	hematoxylin := res.Channels[0].Paletted()
//
// # Stain Bases
//
// A Seed names up to three raw stain vectors. Resolve normalizes them,
// synthesizes missing stains, replaces zero components with Epsilon and
// inverts the basis:
//
//	seed := deconv.NewSeed("custom",
//		deconv.V(0.650, 0.704, 0.286),
//		deconv.V(0.268, 0.570, 0.776),
//		deconv.Vector{}) // derived
//	basis, m, err := deconv.Resolve(seed)
//
// Seeds also come from the built-in catalog (Presets, LookupPreset), from
// the text form "name,R1,G1,B1,R2,G2,B2,R3,G3,B3" (ParseSeed, ReadSeeds), or
// from single-stain image regions (EstimateSeed).
//
// # Unmixing
//
// Deconvolve and DeconvolveInto apply the matrix to every pixel. Each
// pixel is independent, so rows are split into bands and processed on a
// worker pool. Output is bit-exact regardless of worker count.
//
// # Display
//
// BuildDisplayLUTs returns one colour ramp per stain. Channel.Paletted
// applies it; Legend renders a key image and Basis.Report a text summary.
//
// # Logging
//
// deconv is silent by default. See SetLogger.
package deconv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
