package filter

import "github.com/ngpaint/paintcore"

// Filter is the contract every plugin satisfies. Name, Version, and
// Description are fixed strings, queried once at registration.
//
// Process mutates the given tiles in place. The slice is row-major,
// covering ceil(width/256) x ceil(height/256) entries indexed
// ty*tileCountX + tx; a plugin must not reallocate or reslice it.
// Process honors the callback contract described in the package
// documentation.
type Filter interface {
	Name() string
	Version() string
	Description() string
	Process(tiles []*paintcore.Tile, width, height int, params Params, cb Callback)
}

// tileCounts returns the tile grid dimensions covering a width x height
// region.
func tileCounts(width, height int) (int, int) {
	tx := (width + paintcore.TileSize - 1) / paintcore.TileSize
	ty := (height + paintcore.TileSize - 1) / paintcore.TileSize
	return tx, ty
}

// forEachTile walks the tile slice in row-major order, invoking fn per
// tile, reporting progress after each one, and stopping early on
// cancellation.
func forEachTile(tiles []*paintcore.Tile, width, height int, cb Callback, fn func(t *paintcore.Tile)) {
	countX, countY := tileCounts(width, height)
	total := countX * countY
	if total > len(tiles) {
		total = len(tiles)
	}
	for i := 0; i < total; i++ {
		fn(tiles[i])
		cb.report(float64(i+1) / float64(total))
		if cb.cancelled() {
			return
		}
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
