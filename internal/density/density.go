// Package density converts between 8-bit light intensity and optical density.
//
// Optical density ("absorption") is the logarithmic transform of transmitted
// light under the Beer-Lambert approximation. Stain contributions add linearly
// in this space, which is what makes colour deconvolution a matrix product.
//
// Intensities are scaled so that 0..255 maps onto densities 255..~0:
//
//	d = -255 * ln((v+1)/255) / ln(255)
//	v = exp(-(d-255) * ln(255) / 255)
//
// The intensity → density direction is backed by a 256-entry table built once
// at package initialization. Direct evaluates the closed form and exists for
// verification.
package density

import "math"

// Log255 is ln(255), the scale factor shared by both directions.
var Log255 = math.Log(255.0)

// absorptionLUT maps an 8-bit intensity to its optical density.
// Entry 255 is slightly negative (about -0.18) and is kept as is.
var absorptionLUT [256]float64

func init() {
	for i := range absorptionLUT {
		absorptionLUT[i] = Direct(uint8(i))
	}
}

// ToDensity returns the optical density of an 8-bit intensity using the
// precomputed table.
//
// Example:
//
//	d := ToDensity(0)   // 255.0
//	d = ToDensity(255)  // ≈ -0.18
func ToDensity(v uint8) float64 {
	return absorptionLUT[v]
}

// Direct computes the optical density of v from the closed-form formula.
//
// The table behind ToDensity is built from this function, so the two agree
// well within 1e-5 for every input.
func Direct(v uint8) float64 {
	return -(255.0 * math.Log(float64(int(v)+1)/255.0) / Log255)
}

// Table returns a copy of the intensity → density table.
func Table() [256]float64 {
	return absorptionLUT
}

// ToIntensity converts an optical density back to an 8-bit intensity.
//
// Values above 255 saturate at 255. The result is rounded half up.
// A density of +Inf maps to 0 and -Inf maps to 255. NaN maps to 0.
func ToIntensity(d float64) uint8 {
	if math.IsNaN(d) {
		return 0
	}
	v := math.Exp(-(d - 255.0) * Log255 / 255.0)
	if v > 255 {
		return 255
	}
	//nolint:gosec // G115: v is in [0,255]
	return uint8(math.Floor(v + 0.5))
}
