package paintcore

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize changes the canvas dimensions, preserving existing content by
// crop and pad: the region common to the old and new bounds is copied
// into each layer's fresh grid, and any newly exposed area holds
// DefaultPixel. Every layer grid is rebuilt at the new dimensions so the
// grid-matches-canvas invariant holds.
func (c *Canvas) Resize(width, height int) {
	c.resizeLayers(width, height, func(old *TileGrid) *TileGrid {
		ng := NewTileGrid(width, height)
		w := min(width, old.Width())
		h := min(height, old.Height())
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				ng.SetPixel(x, y, old.PixelAt(x, y))
			}
		}
		return ng
	})
}

// ResizeDiscard changes the canvas dimensions and replaces every layer's
// pixel grid with a fresh, empty one. All existing pixel content is
// destroyed; this matches the historical destructive resize and exists
// for callers that depend on it.
func (c *Canvas) ResizeDiscard(width, height int) {
	c.resizeLayers(width, height, func(old *TileGrid) *TileGrid {
		return NewTileGrid(width, height)
	})
}

// ResizeResample changes the canvas dimensions and rescales every
// layer's content to fit, using Catmull-Rom resampling.
func (c *Canvas) ResizeResample(width, height int) {
	c.resizeLayers(width, height, func(old *TileGrid) *TileGrid {
		src := old.ToImage()
		dst := image.NewNRGBA64(image.Rect(0, 0, width, height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

		ng := NewTileGrid(width, height)
		ng.SetFromImage(dst)
		return ng
	})
}

func (c *Canvas) resizeLayers(width, height int, rebuild func(old *TileGrid) *TileGrid) {
	c.width = width
	c.height = height
	for _, layer := range c.layers {
		layer.SetPixels(rebuild(layer.Pixels()))
	}
	Logger().Debug("canvas resized", "width", width, "height", height)
}
