package filter

import (
	"math"

	"github.com/ngpaint/paintcore"
)

// SmudgeContext carries the pickup buffer of one smudge stroke: the
// color patch sampled at the previous dab position, dragged into the
// next dab. Each stroke (or each filter invocation) owns its own
// context, so unrelated strokes never share pickup state.
type SmudgeContext struct {
	radius int
	buf    []paintcore.Pixel
	primed bool
}

// NewSmudgeContext creates a pickup buffer for a brush of the given
// radius in pixels.
func NewSmudgeContext(radius int) *SmudgeContext {
	side := radius*2 + 1
	return &SmudgeContext{
		radius: radius,
		buf:    make([]paintcore.Pixel, side*side),
	}
}

// PickUp samples the square patch of side 2*radius+1 centered on (x, y)
// into the pickup buffer. Samples outside the tile read as
// DefaultPixel.
func (s *SmudgeContext) PickUp(t *paintcore.Tile, x, y int) {
	i := 0
	for dy := -s.radius; dy <= s.radius; dy++ {
		for dx := -s.radius; dx <= s.radius; dx++ {
			s.buf[i] = t.At(x+dx, y+dy)
			i++
		}
	}
	s.primed = true
}

// Dab blends the pickup buffer into the tile at (x, y) with linear
// distance falloff scaled by strength, then re-samples the result so the
// next dab drags the mixed color forward. A dab before any pickup is a
// no-op.
//
// edgeWeight, when non-nil, further scales the blend per pixel; the
// smart smudge mode uses it to damp smudging across detected edges.
func (s *SmudgeContext) Dab(t *paintcore.Tile, x, y int, strength float64, edgeWeight func(x, y int) float64) {
	if !s.primed {
		return
	}

	i := 0
	for dy := -s.radius; dy <= s.radius; dy++ {
		for dx := -s.radius; dx <= s.radius; dx++ {
			px, py := x+dx, y+dy
			src := s.buf[i]
			i++
			if px < 0 || px >= paintcore.TileSize || py < 0 || py >= paintcore.TileSize {
				continue
			}

			d := math.Sqrt(float64(dx*dx + dy*dy))
			falloff := 1 - d/float64(s.radius)
			if falloff < 0 {
				falloff = 0
			}
			alpha := strength * falloff
			if edgeWeight != nil {
				alpha *= edgeWeight(px, py)
			}

			dest := t.At(px, py)
			dest.R = mix16(dest.R, src.R, alpha)
			dest.G = mix16(dest.G, src.G, alpha)
			dest.B = mix16(dest.B, src.B, alpha)
			dest.A = mix16(dest.A, src.A, alpha)
			t.Set(px, py, dest)
		}
	}

	s.PickUp(t, x, y)
}

func mix16(dst, src uint16, alpha float64) uint16 {
	return uint16(float64(dst)*(1-alpha) + float64(src)*alpha)
}

// Smudge drags color across each tile with a soft round brush. The
// pickup buffer lives in a per-invocation SmudgeContext rather than
// process-wide state, so concurrent or interleaved invocations cannot
// contaminate each other.
//
// Parameters: float "strength" default 0.5, clamp [0, 1]; int "radius"
// default 5, clamp [1, 50]; string "mode", where "smart" damps the
// effect near edges found by a Sobel magnitude map.
type Smudge struct{}

// Name implements Filter.
func (Smudge) Name() string { return "Smudge" }

// Version implements Filter.
func (Smudge) Version() string { return "1.0.0" }

// Description implements Filter.
func (Smudge) Description() string {
	return "Smudge tool for color blending and liquefying effects"
}

// Process implements Filter.
func (Smudge) Process(tiles []*paintcore.Tile, width, height int, params Params, cb Callback) {
	strength := clampFloat(params.Float("strength", 0.5), 0, 1)
	radius := clampInt(params.Int("radius", 5), 1, 50)
	smart := params.String("mode", "") == "smart"

	forEachTile(tiles, width, height, cb, func(t *paintcore.Tile) {
		ctx := NewSmudgeContext(radius)
		center := paintcore.TileSize / 2

		var edgeWeight func(x, y int) float64
		if smart {
			edges := sobelMagnitude(t)
			edgeWeight = func(x, y int) float64 {
				return 1 - edges[y*paintcore.TileSize+x]
			}
		}

		// Drag a short horizontal stroke through the tile center,
		// carrying each dab's mixed color into the next.
		ctx.PickUp(t, center-2*radius, center)
		for x := center - 2*radius + 1; x <= center+2*radius; x++ {
			ctx.Dab(t, x, center, strength, edgeWeight)
		}
	})
}

// sobelMagnitude computes a normalized [0, 1] edge-strength map over the
// tile's luminance.
func sobelMagnitude(t *paintcore.Tile) []float64 {
	const size = paintcore.TileSize

	lum := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := t.At(x, y)
			lum[y*size+x] = (float64(p.R) + float64(p.G) + float64(p.B)) / (3 * paintcore.MaxChannel)
		}
	}

	at := func(x, y int) float64 {
		return lum[clampInt(y, 0, size-1)*size+clampInt(x, 0, size-1)]
	}

	mag := make([]float64, size*size)
	maxMag := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			m := math.Hypot(gx, gy)
			mag[y*size+x] = m
			if m > maxMag {
				maxMag = m
			}
		}
	}
	if maxMag > 0 {
		for i := range mag {
			mag[i] /= maxMag
		}
	}
	return mag
}
