package filter

import "github.com/ngpaint/paintcore"

// Inpaint reconstructs a circular region of each tile from its
// surroundings by iterative neighborhood diffusion: masked pixels are
// repeatedly replaced with the average of their neighbors until the fill
// converges inward from the mask boundary.
//
// Parameters: int "radius" (mask radius and diffusion reach) default 3,
// clamp [1, 50]; ints "centerX"/"centerY" default to the tile center;
// string "algorithm" selects the neighborhood: "telea" (default) uses
// the 4-connected neighborhood, "navier_stokes" the 8-connected one.
type Inpaint struct{}

// Name implements Filter.
func (Inpaint) Name() string { return "Inpaint" }

// Version implements Filter.
func (Inpaint) Version() string { return "1.0.0" }

// Description implements Filter.
func (Inpaint) Description() string {
	return "Content-aware fill using neighborhood diffusion"
}

var (
	neighbors4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	neighbors8 = [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

// Process implements Filter.
func (Inpaint) Process(tiles []*paintcore.Tile, width, height int, params Params, cb Callback) {
	radius := clampInt(params.Int("radius", 3), 1, 50)
	centerX := params.Int("centerX", paintcore.TileSize/2)
	centerY := params.Int("centerY", paintcore.TileSize/2)

	neighborhood := neighbors4
	if params.String("algorithm", "telea") == "navier_stokes" {
		neighborhood = neighbors8
	}

	forEachTile(tiles, width, height, cb, func(t *paintcore.Tile) {
		inpaintTile(t, centerX, centerY, radius, neighborhood)
	})
}

func inpaintTile(t *paintcore.Tile, cx, cy, radius int, neighborhood [][2]int) {
	const size = paintcore.TileSize

	mask := make([]bool, size*size)
	any := false
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= size || y < 0 || y >= size {
				continue
			}
			if dx*dx+dy*dy <= radius*radius {
				mask[y*size+x] = true
				any = true
			}
		}
	}
	if !any {
		return
	}

	// Each pass fills masked pixels bordering at least one known pixel,
	// then promotes them to known, so the fill front marches inward.
	// radius+1 passes always reach the mask center.
	filled := make([]bool, size*size)
	for pass := 0; pass <= radius; pass++ {
		var frontier [][2]int
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				idx := y*size + x
				if !mask[idx] || filled[idx] {
					continue
				}

				var sumR, sumG, sumB, sumA float64
				known := 0
				for _, n := range neighborhood {
					nx, ny := x+n[0], y+n[1]
					if nx < 0 || nx >= size || ny < 0 || ny >= size {
						continue
					}
					nidx := ny*size + nx
					if mask[nidx] && !filled[nidx] {
						continue
					}
					p := t.At(nx, ny)
					sumR += float64(p.R)
					sumG += float64(p.G)
					sumB += float64(p.B)
					sumA += float64(p.A)
					known++
				}
				if known == 0 {
					continue
				}

				t.Set(x, y, paintcore.Pixel{
					R: channel16(sumR / float64(known)),
					G: channel16(sumG / float64(known)),
					B: channel16(sumB / float64(known)),
					A: channel16(sumA / float64(known)),
				})
				frontier = append(frontier, [2]int{x, y})
			}
		}
		if len(frontier) == 0 {
			break
		}
		for _, f := range frontier {
			filled[f[1]*size+f[0]] = true
		}
	}
}
