package deconv

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// Epsilon replaces exactly-zero basis components after resolution.
const Epsilon = 0.001

// Basis is a resolved stain basis: three unit stain vectors with no zero
// components, ready for inversion. Basis values are produced by Resolve.
type Basis struct {
	// Name is copied from the seed.
	Name string

	// Raw holds the seed vectors as supplied.
	Raw [3]Vector

	// Stains holds the normalized, completed vectors.
	Stains [3]Vector

	// Synthesized reports which stains were derived rather than supplied.
	Synthesized [3]bool

	// Warnings collects non-fatal diagnostics raised during resolution.
	Warnings []string
}

// Resolve turns a seed into a stain basis and its unmixing matrix.
//
// The steps are applied in order:
//  1. each vector is normalized; a zero vector stays zero
//  2. an unspecified second stain becomes the first stain rotated (B,R,G)
//  3. an unspecified third stain is derived per channel as
//     sqrt(1 - s1[c]^2 - s2[c]^2) and renormalized; a channel where the
//     squares exceed 1 is set to 0 and a warning is recorded
//  4. exactly-zero components are replaced with Epsilon
//  5. the basis is inverted in closed form
//
// Resolve returns ErrSingularBasis when the inversion divides by zero.
// The returned Basis is valid even in that case so callers can report it.
func Resolve(seed Seed) (Basis, Matrix, error) {
	b := Basis{Name: seed.Name, Raw: seed.Stains}
	for i, v := range seed.Stains {
		b.Stains[i] = v.Normalize()
	}

	if b.Stains[1].IsZero() {
		s0 := b.Stains[0]
		b.Stains[1] = Vector{s0[B], s0[R], s0[G]}
		b.Synthesized[1] = true
	}

	if b.Stains[2].IsZero() {
		b.Stains[2] = b.complement()
		b.Synthesized[2] = true
	}

	for i := range b.Stains {
		for c := range b.Stains[i] {
			if b.Stains[i][c] == 0 {
				b.Stains[i][c] = Epsilon
			}
		}
	}

	log := Logger()
	log.Debug("deconv: resolved basis",
		"name", b.Name,
		"stain1", b.Stains[0].String(),
		"stain2", b.Stains[1].String(),
		"stain3", b.Stains[2].String())

	m, err := invert(b.Stains)
	if err != nil {
		return b, Matrix{}, err
	}

	if cond := mat.Cond(b.Dense(), 2); cond > illConditioned {
		log.Warn("deconv: ill-conditioned stain basis", "name", b.Name, "cond", cond)
	} else {
		log.Debug("deconv: unmixing matrix", "name", b.Name, "q", m[:], "cond", cond)
	}
	return b, m, nil
}

// complement derives the third stain from the first two.
func (b *Basis) complement() Vector {
	var v Vector
	s0, s1 := b.Stains[0], b.Stains[1]
	for c := range v {
		sq := float64(s0[c]*s0[c]) + float64(s1[c]*s1[c])
		if sq > 1 {
			msg := fmt.Sprintf("stain3 %s component clipped to 0: stain1^2 + stain2^2 = %v exceeds 1",
				channelNames[c], sq)
			b.Warnings = append(b.Warnings, msg)
			Logger().Warn("deconv: "+msg, "name", b.Name)
			continue
		}
		v[c] = math.Sqrt(1.0 - float64(s0[c]*s0[c]) - float64(s1[c]*s1[c]))
	}
	return v.Normalize()
}

var channelNames = [3]string{"red", "green", "blue"}

// Dense returns the basis as a 3x3 matrix with one stain per row.
func (b Basis) Dense() *mat.Dense {
	data := make([]float64, 0, 9)
	for _, v := range b.Stains {
		data = append(data, v[:]...)
	}
	return mat.NewDense(3, 3, data)
}

// Swatch returns the display colour of stain i: each channel is
// 255 - trunc(255*component), so strongly absorbed light is dark.
func (b Basis) Swatch(i int) colorful.Color {
	v := b.Stains[i]
	return colorful.Color{
		R: swatchComponent(v[R]) / 255,
		G: swatchComponent(v[G]) / 255,
		B: swatchComponent(v[B]) / 255,
	}
}

func swatchComponent(c float64) float64 {
	return float64(clampByte(255 - int(255*c)))
}

// Report returns a multi-line summary of the basis for logs and the
// command-line host. The unmixing coefficients are included when m is
// non-nil.
func (b Basis) Report(m *Matrix) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Colour deconvolution: %s\n", b.Name)
	for i := range b.Stains {
		fmt.Fprintf(&sb, "Colour_%d raw %v\n", i+1, b.Raw[i])
	}
	for i, v := range b.Stains {
		note := ""
		if b.Synthesized[i] {
			note = " (synthesized)"
		}
		fmt.Fprintf(&sb, "Colour_%d R:%.6f, G:%.6f, B:%.6f %s%s\n",
			i+1, v[R], v[G], v[B], b.Swatch(i).Hex(), note)
	}
	if m != nil {
		for i := 0; i < 3; i++ {
			row := m.Row(i)
			fmt.Fprintf(&sb, "q[%d..%d] %.8f %.8f %.8f\n", 3*i, 3*i+2, row[R], row[G], row[B])
		}
	}
	for _, w := range b.Warnings {
		fmt.Fprintf(&sb, "warning: %s\n", w)
	}
	return sb.String()
}
