package deconv

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// illConditioned is the 2-norm condition number above which Resolve warns
// that small colour differences will be strongly amplified.
const illConditioned = 1e6

// Matrix is the unmixing matrix: nine coefficients in row-major order.
// Row i projects a pixel's optical density onto output channel i.
type Matrix [9]float64

// Row returns the coefficients for output channel i.
func (m Matrix) Row(i int) Vector {
	return Vector{m[3*i], m[3*i+1], m[3*i+2]}
}

// Project maps an optical-density triple onto the three stain channels.
// Each product is rounded before it is summed.
func (m *Matrix) Project(dR, dG, dB float64) (d0, d1, d2 float64) {
	d0 = float64(dR*m[0]) + float64(dG*m[1]) + float64(dB*m[2])
	d1 = float64(dR*m[3]) + float64(dG*m[4]) + float64(dB*m[5])
	d2 = float64(dR*m[6]) + float64(dG*m[7]) + float64(dB*m[8])
	return d0, d1, d2
}

// Dense returns m as a 3x3 gonum matrix.
func (m Matrix) Dense() *mat.Dense {
	data := make([]float64, 9)
	copy(data, m[:])
	return mat.NewDense(3, 3, data)
}

// IsFinite reports whether every coefficient is a finite number.
func (m Matrix) IsFinite() bool {
	for _, q := range m {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return false
		}
	}
	return true
}

// invert computes the unmixing matrix of a stain basis by direct
// elimination. With x, y, z the red, green and blue components and
// subscripts the stain index, the pivots are
//
//	A = y1 - x1*y0/x0
//	V = z1 - x1*z0/x0
//	C = z2 - y2*V/A + x2*(V/A*y0/x0 - z0/x0)
//
// and the coefficients follow by back-substitution. The expression order
// is fixed: reordering changes the last bit and with it some 8-bit outputs.
func invert(s [3]Vector) (Matrix, error) {
	x0, y0, z0 := s[0][R], s[0][G], s[0][B]
	x1, y1, z1 := s[1][R], s[1][G], s[1][B]
	x2, y2, z2 := s[2][R], s[2][G], s[2][B]

	if x0 == 0 {
		return Matrix{}, ErrSingularBasis
	}
	A := y1 - x1*y0/x0
	if A == 0 {
		return Matrix{}, ErrSingularBasis
	}
	V := z1 - x1*z0/x0
	C := z2 - y2*V/A + float64(x2*(V/A*y0/x0-z0/x0))
	if C == 0 {
		return Matrix{}, ErrSingularBasis
	}

	var q Matrix
	q[2] = (-x2/x0 - x2/A*x1/x0*y0/x0 + y2/A*x1/x0) / C
	q[1] = -q[2]*V/A - x1/(x0*A)
	q[0] = 1.0/x0 - q[1]*y0/x0 - q[2]*z0/x0
	q[5] = (-y2/A + x2/A*y0/x0) / C
	q[4] = -q[5]*V/A + 1.0/A
	q[3] = -q[4]*y0/x0 - q[5]*z0/x0
	q[8] = 1.0 / C
	q[7] = -q[8] * V / A
	q[6] = -q[7]*y0/x0 - q[8]*z0/x0

	if !q.IsFinite() {
		return Matrix{}, ErrSingularBasis
	}
	return q, nil
}
