package paintcore

import (
	"image"
	"image/color"
)

// ToImage converts the grid to a 16-bit NRGBA image of the grid's pixel
// dimensions. Tile padding beyond the grid bounds is not included.
func (g *TileGrid) ToImage() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := g.PixelAt(x, y)
			img.SetNRGBA64(x, y, color.NRGBA64{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}

// SetFromImage copies pixel data from an image into the grid, converting
// through the non-premultiplied 16-bit color model. Pixels outside the
// intersection of the image and grid bounds are left untouched. Affected
// tiles are marked dirty.
func (g *TileGrid) SetFromImage(img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w := min(g.width, b.Dx())
	h := min(g.height, b.Dy())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			g.SetPixel(x, y, Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
}
