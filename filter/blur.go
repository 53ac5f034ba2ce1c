package filter

import (
	"math"

	"github.com/ngpaint/paintcore"
)

// Blur approximates a Gaussian blur with three box-blur passes per tile.
// Box sizes are derived from sigma so the composite kernel converges on
// a true Gaussian; the approximation is separable, giving O(n) cost per
// pass independent of sigma.
//
// Parameters: float "sigma", default 1.0, clamped to [0.1, 50].
type Blur struct{}

// Name implements Filter.
func (Blur) Name() string { return "Gaussian Blur" }

// Version implements Filter.
func (Blur) Version() string { return "1.0.0" }

// Description implements Filter.
func (Blur) Description() string {
	return "Fast Gaussian blur using box blur approximation"
}

// Process implements Filter.
func (Blur) Process(tiles []*paintcore.Tile, width, height int, params Params, cb Callback) {
	sigma := clampFloat(params.Float("sigma", 1.0), 0.1, 50)

	forEachTile(tiles, width, height, cb, func(t *paintcore.Tile) {
		blurTile(t, sigma)
	})
}

// boxSizesForGauss returns the widths of n box blurs whose composition
// approximates a Gaussian of the given standard deviation.
func boxSizesForGauss(sigma float64, n int) []int {
	wIdeal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) /
		float64(-4*wl-4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// blurTile applies the box-blur passes to all four channels of a tile.
func blurTile(t *paintcore.Tile, sigma float64) {
	const size = paintcore.TileSize

	buf := make([][4]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := t.At(x, y)
			buf[y*size+x] = [4]float64{float64(p.R), float64(p.G), float64(p.B), float64(p.A)}
		}
	}

	tmp := make([][4]float64, size*size)
	for _, boxSize := range boxSizesForGauss(sigma, 3) {
		if boxSize <= 1 {
			continue
		}
		radius := boxSize / 2
		boxPassHorizontal(buf, tmp, size, radius)
		boxPassVertical(tmp, buf, size, radius)
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := buf[y*size+x]
			t.Set(x, y, paintcore.Pixel{
				R: channel16(v[0]),
				G: channel16(v[1]),
				B: channel16(v[2]),
				A: channel16(v[3]),
			})
		}
	}
}

// boxPassHorizontal computes a sliding-window row mean with edge clamp.
func boxPassHorizontal(src, dst [][4]float64, size, radius int) {
	window := float64(2*radius + 1)
	for y := 0; y < size; y++ {
		row := src[y*size : (y+1)*size]
		var sum [4]float64
		for i := -radius; i <= radius; i++ {
			v := row[clampInt(i, 0, size-1)]
			for c := 0; c < 4; c++ {
				sum[c] += v[c]
			}
		}
		for x := 0; x < size; x++ {
			for c := 0; c < 4; c++ {
				dst[y*size+x][c] = sum[c] / window
			}
			leave := row[clampInt(x-radius, 0, size-1)]
			enter := row[clampInt(x+radius+1, 0, size-1)]
			for c := 0; c < 4; c++ {
				sum[c] += enter[c] - leave[c]
			}
		}
	}
}

// boxPassVertical computes a sliding-window column mean with edge clamp.
func boxPassVertical(src, dst [][4]float64, size, radius int) {
	window := float64(2*radius + 1)
	for x := 0; x < size; x++ {
		var sum [4]float64
		for i := -radius; i <= radius; i++ {
			v := src[clampInt(i, 0, size-1)*size+x]
			for c := 0; c < 4; c++ {
				sum[c] += v[c]
			}
		}
		for y := 0; y < size; y++ {
			for c := 0; c < 4; c++ {
				dst[y*size+x][c] = sum[c] / window
			}
			leave := src[clampInt(y-radius, 0, size-1)*size+x]
			enter := src[clampInt(y+radius+1, 0, size-1)*size+x]
			for c := 0; c < 4; c++ {
				sum[c] += enter[c] - leave[c]
			}
		}
	}
}

// channel16 clamps an accumulated value to the 16-bit channel range.
func channel16(v float64) uint16 {
	if v < 0 {
		return 0
	}
	if v > paintcore.MaxChannel {
		return paintcore.MaxChannel
	}
	return uint16(v)
}
