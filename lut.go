package deconv

import (
	"image/color"
	"math"
)

// DisplayLUT pseudo-colours one output channel. Entry v of each table is
// the display component for intensity v. Tables affect presentation only.
type DisplayLUT struct {
	R, G, B [256]uint8
}

// BuildDisplayLUTs derives one display table per output channel from a
// resolved basis. For stain i and component c,
//
//	table[255-j] = round(255 - j*Stains[i][c])
//
// so intensity 255 is white and intensity 0 is the stain's own colour.
func BuildDisplayLUTs(b Basis) [3]DisplayLUT {
	var luts [3]DisplayLUT
	for i, v := range b.Stains {
		fillRamp(&luts[i].R, v[R])
		fillRamp(&luts[i].G, v[G])
		fillRamp(&luts[i].B, v[B])
	}
	return luts
}

func fillRamp(table *[256]uint8, c float64) {
	for j := 0; j < 256; j++ {
		table[255-j] = roundByte(255.0 - float64(j)*c)
	}
}

// Color returns the display colour for intensity v.
func (l *DisplayLUT) Color(v uint8) color.RGBA {
	return color.RGBA{R: l.R[v], G: l.G[v], B: l.B[v], A: 0xff}
}

// Palette returns the table as a 256-entry palette indexed by intensity.
func (l *DisplayLUT) Palette() color.Palette {
	p := make(color.Palette, 256)
	for v := range p {
		p[v] = l.Color(uint8(v))
	}
	return p
}

// GrayLUT returns the identity table: intensity v displays as gray v.
func GrayLUT() DisplayLUT {
	var l DisplayLUT
	for v := 0; v < 256; v++ {
		l.R[v], l.G[v], l.B[v] = uint8(v), uint8(v), uint8(v)
	}
	return l
}

// roundByte rounds half up and clamps to [0, 255].
func roundByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return clampByte(int(math.Floor(math.Max(-1, math.Min(256, v)) + 0.5)))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
