package paintcore

import (
	"image"
	"math"
)

// stampBrush applies one circular soft-brush stamp centered on pt.
// radius is size/2 truncated to an integer; stamps with a radius below
// one pixel are skipped. For every pixel of the bounding box inside the
// canvas, the Euclidean distance d from the center selects a linear
// falloff alpha = (1 - d/radius) * opacity, clamped to [0, 1], and blend
// mutates the destination pixel with that alpha. Pixels with d > radius
// are untouched.
func (c *Canvas) stampBrush(grid *TileGrid, pt image.Point, size, opacity float64, blend func(dest *Pixel, alpha float64)) {
	radius := int(size / 2)
	if radius < 1 {
		return
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			px := pt.X + dx
			py := pt.Y + dy
			if px < 0 || px >= c.width || py < 0 || py >= c.height {
				continue
			}

			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d > float64(radius) {
				continue
			}

			alpha := clamp01((1 - d/float64(radius)) * opacity)
			dest := grid.PixelAt(px, py)
			blend(&dest, alpha)
			grid.SetPixel(px, py, dest)
		}
	}
}
