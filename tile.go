package paintcore

// TileSize is the fixed edge length of a tile in pixels.
const TileSize = 256

// Tile is a fixed 256x256 block of pixels, the unit of storage and dirty
// tracking. Tiles know their own position in tile units and mark
// themselves dirty on any mutating access.
type Tile struct {
	x, y   int
	pixels []Pixel
	dirty  bool
}

// NewTile creates a tile at the given tile-space position with every
// pixel set to DefaultPixel.
func NewTile(x, y int) *Tile {
	t := &Tile{
		x:      x,
		y:      y,
		pixels: make([]Pixel, TileSize*TileSize),
	}
	for i := range t.pixels {
		t.pixels[i] = DefaultPixel
	}
	return t
}

// X returns the tile's horizontal position in tile units.
func (t *Tile) X() int { return t.x }

// Y returns the tile's vertical position in tile units.
func (t *Tile) Y() int { return t.y }

// Dirty reports whether the tile has been mutated since the flag was
// last cleared.
func (t *Tile) Dirty() bool { return t.dirty }

// SetDirty sets or clears the dirty flag.
func (t *Tile) SetDirty(dirty bool) { t.dirty = dirty }

// At returns the pixel at local coordinates. Out-of-range coordinates
// return DefaultPixel.
func (t *Tile) At(x, y int) Pixel {
	if x < 0 || x >= TileSize || y < 0 || y >= TileSize {
		return DefaultPixel
	}
	return t.pixels[y*TileSize+x]
}

// Set stores a pixel at local coordinates and marks the tile dirty.
// Out-of-range coordinates are silently discarded.
func (t *Tile) Set(x, y int, c Pixel) {
	if x < 0 || x >= TileSize || y < 0 || y >= TileSize {
		return
	}
	t.dirty = true
	t.pixels[y*TileSize+x] = c
}

// Clear resets every pixel to DefaultPixel and marks the tile dirty.
func (t *Tile) Clear() {
	t.Fill(DefaultPixel)
}

// Fill broadcasts a color to every pixel and marks the tile dirty.
func (t *Tile) Fill(c Pixel) {
	for i := range t.pixels {
		t.pixels[i] = c
	}
	t.dirty = true
}

// Clone returns an independent deep copy of the tile, including its
// position and dirty flag.
func (t *Tile) Clone() *Tile {
	nt := &Tile{
		x:      t.x,
		y:      t.y,
		pixels: make([]Pixel, len(t.pixels)),
		dirty:  t.dirty,
	}
	copy(nt.pixels, t.pixels)
	return nt
}

// Add saturating-adds another tile's channels into this one and marks
// the tile dirty.
func (t *Tile) Add(other *Tile) {
	for i := range t.pixels {
		p, o := &t.pixels[i], other.pixels[i]
		p.R = satAdd(p.R, o.R)
		p.G = satAdd(p.G, o.G)
		p.B = satAdd(p.B, o.B)
		p.A = satAdd(p.A, o.A)
	}
	t.dirty = true
}

// Subtract saturating-subtracts another tile's channels from this one
// and marks the tile dirty.
func (t *Tile) Subtract(other *Tile) {
	for i := range t.pixels {
		p, o := &t.pixels[i], other.pixels[i]
		p.R = satSub(p.R, o.R)
		p.G = satSub(p.G, o.G)
		p.B = satSub(p.B, o.B)
		p.A = satSub(p.A, o.A)
	}
	t.dirty = true
}

// Scale multiplies every channel by factor, clamping to the 16-bit
// range, and marks the tile dirty.
func (t *Tile) Scale(factor float64) {
	for i := range t.pixels {
		p := &t.pixels[i]
		p.R = scaleChannel(p.R, factor)
		p.G = scaleChannel(p.G, factor)
		p.B = scaleChannel(p.B, factor)
		p.A = scaleChannel(p.A, factor)
	}
	t.dirty = true
}

func satAdd(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > MaxChannel {
		return MaxChannel
	}
	return uint16(s)
}

func satSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}

func scaleChannel(v uint16, factor float64) uint16 {
	s := float64(v) * factor
	if s < 0 {
		return 0
	}
	if s > MaxChannel {
		return MaxChannel
	}
	return uint16(s)
}
