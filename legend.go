package deconv

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Legend layout, in pixels.
const (
	LegendWidth  = 350
	LegendHeight = 65

	legendMargin  = 10
	legendSwatch  = 14
	legendRowStep = 15
	legendTitleY  = 15
	legendTextX   = 27
)

// LegendText returns the legend line for stain i, e.g.
// "Colour_1 R:0.6442112, G:0.7165561, B:0.26684403".
func (b Basis) LegendText(i int) string {
	v := b.Stains[i]
	return fmt.Sprintf("Colour_%d R:%v, G:%v, B:%v", i+1, float32(v[R]), float32(v[G]), float32(v[B]))
}

// Legend renders a small key for a resolved basis: a title line naming the
// stain set, then one row per stain with a colour swatch and its vector.
// The image is LegendWidth x LegendHeight, widened if a text line would not
// fit.
func Legend(b Basis) *image.RGBA {
	face := basicfont.Face7x13
	title := "Colour deconvolution: " + b.Name

	width := LegendWidth
	width = max(width, legendMargin+font.MeasureString(face, title).Ceil()+legendMargin)
	for i := range b.Stains {
		width = max(width, legendTextX+font.MeasureString(face, b.LegendText(i)).Ceil()+legendMargin)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, LegendHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	d.Dot = fixed.P(legendMargin, legendTitleY)
	d.DrawString(title)

	for i := range b.Stains {
		top := 18 + i*legendRowStep
		swatch := image.Rect(legendMargin, top, legendMargin+legendSwatch, top+legendSwatch)
		draw.Draw(img, swatch, image.NewUniform(b.Swatch(i)), image.Point{}, draw.Src)

		d.Dot = fixed.P(legendTextX, top+legendSwatch)
		d.DrawString(b.LegendText(i))
	}
	return img
}
