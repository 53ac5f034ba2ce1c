package filter

import (
	"math"

	"github.com/ngpaint/paintcore"
)

// Unsharp sharpens by adding back the difference between a tile and a
// Gaussian-blurred copy of it:
//
//	result = original + amount * (original - blurred)
//
// An optional luminance threshold gates which pixels receive the boost,
// protecting flat regions from noise amplification.
//
// Parameters: float "radius" (blur sigma) default 1, clamp [0.1, 50];
// float "amount" default 1, clamp [0, 5]; float "threshold" default 0,
// clamp [0, 1].
type Unsharp struct{}

// Name implements Filter.
func (Unsharp) Name() string { return "Unsharp Mask" }

// Version implements Filter.
func (Unsharp) Version() string { return "1.0.0" }

// Description implements Filter.
func (Unsharp) Description() string {
	return "Unsharp mask filter for image sharpening"
}

// Process implements Filter.
func (Unsharp) Process(tiles []*paintcore.Tile, width, height int, params Params, cb Callback) {
	radius := clampFloat(params.Float("radius", 1.0), 0.1, 50)
	amount := clampFloat(params.Float("amount", 1.0), 0, 5)
	threshold := clampFloat(params.Float("threshold", 0), 0, 1)

	forEachTile(tiles, width, height, cb, func(t *paintcore.Tile) {
		unsharpTile(t, radius, amount, threshold)
	})
}

func unsharpTile(t *paintcore.Tile, radius, amount, threshold float64) {
	const size = paintcore.TileSize

	blurred := t.Clone()
	blurTile(blurred, radius)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			orig := t.At(x, y)
			soft := blurred.At(x, y)

			dr := float64(orig.R) - float64(soft.R)
			dg := float64(orig.G) - float64(soft.G)
			db := float64(orig.B) - float64(soft.B)

			// Gate on the luminance of the difference.
			if threshold > 0 {
				lum := (math.Abs(dr) + math.Abs(dg) + math.Abs(db)) / (3 * paintcore.MaxChannel)
				if lum < threshold {
					continue
				}
			}

			t.Set(x, y, paintcore.Pixel{
				R: channel16(float64(orig.R) + amount*dr),
				G: channel16(float64(orig.G) + amount*dg),
				B: channel16(float64(orig.B) + amount*db),
				A: orig.A,
			})
		}
	}
}
