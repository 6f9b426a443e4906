package adapter

import (
	"image/color"

	"gonum.org/v1/plot/vg/draw"
)

// set2 is the ColorBrewer Set2 qualitative palette.
var set2 = []color.NRGBA{
	{R: 0x66, G: 0xc2, B: 0xa5, A: 0xff},
	{R: 0xfc, G: 0x8d, B: 0x62, A: 0xff},
	{R: 0x8d, G: 0xa0, B: 0xcb, A: 0xff},
	{R: 0xe7, G: 0x8a, B: 0xc3, A: 0xff},
	{R: 0xa6, G: 0xd8, B: 0x54, A: 0xff},
	{R: 0xff, G: 0xd9, B: 0x2f, A: 0xff},
	{R: 0xe5, G: 0xc4, B: 0x94, A: 0xff},
	{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff},
}

var glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
	draw.BoxGlyph{},
	draw.PyramidGlyph{},
	draw.RingGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
}

var (
	capacityLineColor = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xb3}
	fairLineColor     = color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xb3}
	gridColor         = color.NRGBA{A: 0x4d}
)

// variantColor samples the palette evenly across n variants, so the first
// and last variant always get the outermost colours.
func variantColor(i, n int) color.NRGBA {
	if n <= 1 {
		return set2[0]
	}
	t := float64(i) / float64(n-1)
	idx := int(t * float64(len(set2)))
	if idx >= len(set2) {
		idx = len(set2) - 1
	}
	return set2[idx]
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a*255 + 0.5)
	return c
}

func variantGlyph(i int) draw.GlyphDrawer {
	return glyphs[i%len(glyphs)]
}
