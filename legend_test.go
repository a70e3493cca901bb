package deconv

import (
	"image/color"
	"testing"
)

func TestLegend(t *testing.T) {
	b, _, err := Resolve(referenceSeed)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	img := Legend(b)

	if got := img.Bounds().Dy(); got != LegendHeight {
		t.Errorf("height = %d, want %d", got, LegendHeight)
	}
	if got := img.Bounds().Dx(); got < LegendWidth {
		t.Errorf("width = %d, want >= %d", got, LegendWidth)
	}

	// Background is white.
	if got := img.RGBAAt(img.Bounds().Dx()-1, LegendHeight-1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner = %v, want white", got)
	}

	// Swatch centres carry the stain colours.
	want := []color.RGBA{
		{86, 94, 155, 255},
		{191, 67, 96, 255},
		{77, 196, 84, 255},
	}
	for i, w := range want {
		if got := img.RGBAAt(17, 18+i*legendRowStep+7); got != w {
			t.Errorf("swatch %d = %v, want %v", i, got, w)
		}
	}

	// The title is drawn in black somewhere on the first text line.
	dark := false
	for x := legendMargin; x < 100 && !dark; x++ {
		for y := 2; y < legendTitleY+2; y++ {
			if img.RGBAAt(x, y).R < 128 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("title text not drawn")
	}
}

func TestLegendWidensForLongNames(t *testing.T) {
	b, _, err := Resolve(NewSeed("a very long custom stain name that does not fit the default width",
		V(0.65, 0.704, 0.286), V(0.268, 0.57, 0.776), Vector{}))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got := Legend(b).Bounds().Dx(); got <= LegendWidth {
		t.Errorf("width = %d, want > %d", got, LegendWidth)
	}
}

func TestLegendText(t *testing.T) {
	b := Basis{Stains: [3]Vector{{0.5, 0.25, 0.125}}}
	if got, want := b.LegendText(0), "Colour_1 R:0.5, G:0.25, B:0.125"; got != want {
		t.Errorf("LegendText(0) = %q, want %q", got, want)
	}
}
