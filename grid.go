package paintcore

// discardTile is the shared fallback for out-of-range tile access.
// Writes to it are harmless and never reach live tiles; its contents are
// meaningless and must not be read back by callers.
var discardTile = NewTile(-1, -1)

// TileGrid is the full pixel surface of a layer: a dense 2-D array of
// tiles covering a width x height region. The grid owns all of its tiles
// exclusively and is always allocated for the full bounding rectangle,
// with ceil(width/256) x ceil(height/256) tiles.
type TileGrid struct {
	width      int
	height     int
	tileCountX int
	tileCountY int
	tiles      []*Tile
}

// NewTileGrid allocates a grid covering width x height pixels with every
// tile up front.
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{
		width:      width,
		height:     height,
		tileCountX: (width + TileSize - 1) / TileSize,
		tileCountY: (height + TileSize - 1) / TileSize,
	}
	g.tiles = make([]*Tile, 0, g.tileCountX*g.tileCountY)
	for ty := 0; ty < g.tileCountY; ty++ {
		for tx := 0; tx < g.tileCountX; tx++ {
			g.tiles = append(g.tiles, NewTile(tx, ty))
		}
	}
	return g
}

// Width returns the grid width in pixels.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *TileGrid) Height() int { return g.height }

// TileCountX returns the number of tile columns.
func (g *TileGrid) TileCountX() int { return g.tileCountX }

// TileCountY returns the number of tile rows.
func (g *TileGrid) TileCountY() int { return g.tileCountY }

// Tile returns the tile at tile coordinates. Out-of-range coordinates
// return the shared discard tile, which callers may mutate harmlessly.
func (g *TileGrid) Tile(tileX, tileY int) *Tile {
	if tileX < 0 || tileX >= g.tileCountX || tileY < 0 || tileY >= g.tileCountY {
		return discardTile
	}
	return g.tiles[tileY*g.tileCountX+tileX]
}

// PixelAt returns the pixel at absolute grid coordinates. Out-of-range
// coordinates return DefaultPixel, never discard-tile contents.
func (g *TileGrid) PixelAt(x, y int) Pixel {
	if x < 0 || y < 0 || x/TileSize >= g.tileCountX || y/TileSize >= g.tileCountY {
		return DefaultPixel
	}
	return g.tiles[(y/TileSize)*g.tileCountX+x/TileSize].At(x%TileSize, y%TileSize)
}

// SetPixel stores a pixel at absolute grid coordinates, marking the
// owning tile dirty. Out-of-range writes go to the shared discard tile.
func (g *TileGrid) SetPixel(x, y int, c Pixel) {
	if x < 0 || y < 0 {
		discardTile.Set(0, 0, c)
		return
	}
	g.Tile(x/TileSize, y/TileSize).Set(x%TileSize, y%TileSize, c)
}

// Clear resets every pixel in every tile to DefaultPixel.
func (g *TileGrid) Clear() {
	for _, t := range g.tiles {
		t.Clear()
	}
}

// Fill broadcasts a color to every pixel in every tile.
func (g *TileGrid) Fill(c Pixel) {
	for _, t := range g.tiles {
		t.Fill(c)
	}
}

// DirtyTiles returns the tiles whose dirty flag is set, in row-major
// order.
func (g *TileGrid) DirtyTiles() []*Tile {
	var dirty []*Tile
	for _, t := range g.tiles {
		if t.Dirty() {
			dirty = append(dirty, t)
		}
	}
	return dirty
}

// ClearDirtyFlags clears the dirty flag on every tile.
func (g *TileGrid) ClearDirtyFlags() {
	for _, t := range g.tiles {
		t.SetDirty(false)
	}
}

// Clone returns an independent deep copy of the grid; every tile is
// duplicated.
func (g *TileGrid) Clone() *TileGrid {
	ng := &TileGrid{
		width:      g.width,
		height:     g.height,
		tileCountX: g.tileCountX,
		tileCountY: g.tileCountY,
		tiles:      make([]*Tile, 0, len(g.tiles)),
	}
	for _, t := range g.tiles {
		ng.tiles = append(ng.tiles, t.Clone())
	}
	return ng
}
