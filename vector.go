package deconv

import (
	"fmt"
	"math"
)

// Channel indices into a Vector.
const (
	R = 0
	G = 1
	B = 2
)

// Vector is a stain's optical-density signature: how strongly the dye
// absorbs in the red, green and blue channels. Vectors supplied by callers
// need not be unit length.
type Vector [3]float64

// V is a convenience function to create a Vector.
func V(r, g, b float64) Vector {
	return Vector{r, g, b}
}

// Length returns the Euclidean length of the vector.
// Products are rounded before summing so the result is identical on
// platforms that would otherwise fuse multiply-add.
func (v Vector) Length() float64 {
	return math.Sqrt(float64(v[R]*v[R]) + float64(v[G]*v[G]) + float64(v[B]*v[B]))
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to the zero vector.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v[R] / length, v[G] / length, v[B] / length}
}

// IsZero reports whether all three components are exactly zero.
// A zero vector marks a stain as unspecified.
func (v Vector) IsZero() bool {
	return v[R] == 0 && v[G] == 0 && v[B] == 0
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return float64(v[R]*w[R]) + float64(v[G]*w[G]) + float64(v[B]*w[B])
}

// String formats the vector with float32 precision.
func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v, %v)", float32(v[R]), float32(v[G]), float32(v[B]))
}
