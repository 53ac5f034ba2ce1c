package paintcore

import "testing"

// TestTileGridCounts verifies the tile counts follow ceiling division
// for a spread of dimensions.
func TestTileGridCounts(t *testing.T) {
	cases := []struct {
		w, h           int
		countX, countY int
	}{
		{1, 1, 1, 1},
		{256, 256, 1, 1},
		{257, 256, 2, 1},
		{300, 600, 2, 3},
		{1920, 1080, 8, 5},
		{255, 513, 1, 3},
	}
	for _, c := range cases {
		g := NewTileGrid(c.w, c.h)
		if g.TileCountX() != c.countX || g.TileCountY() != c.countY {
			t.Errorf("NewTileGrid(%d, %d): counts (%d, %d), want (%d, %d)",
				c.w, c.h, g.TileCountX(), g.TileCountY(), c.countX, c.countY)
		}
		if got := len(g.tiles); got != c.countX*c.countY {
			t.Errorf("NewTileGrid(%d, %d): %d tiles allocated, want %d",
				c.w, c.h, got, c.countX*c.countY)
		}
	}
}

// TestTileGridFillRoundTrip verifies fill followed by per-pixel reads
// returns the fill color everywhere in bounds.
func TestTileGridFillRoundTrip(t *testing.T) {
	g := NewTileGrid(300, 270)
	p := NewPixelRGBA(1000, 2000, 3000, 4000)
	g.Fill(p)

	for y := 0; y < 270; y++ {
		for x := 0; x < 300; x++ {
			if got := g.PixelAt(x, y); got != p {
				t.Fatalf("PixelAt(%d, %d) = %+v, want %+v", x, y, got, p)
			}
		}
	}
}

// TestTileGridOutOfBoundsFallback verifies out-of-range access goes to
// the shared discard tile and never corrupts live tiles.
func TestTileGridOutOfBoundsFallback(t *testing.T) {
	g := NewTileGrid(256, 256)
	g.Fill(White)

	if got := g.Tile(5, 0); got != discardTile {
		t.Error("out-of-range Tile must return the shared discard tile")
	}
	if got := g.Tile(0, 0); got == discardTile {
		t.Error("in-range Tile must not return the discard tile")
	}

	// Writes through every out-of-range path.
	g.SetPixel(-1, 10, Red)
	g.SetPixel(10, -1, Red)
	g.SetPixel(900, 10, Red)
	g.SetPixel(10, 900, Red)
	g.Tile(99, 99).Fill(Red)

	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if got := g.PixelAt(x, y); got != White {
				t.Fatalf("discard write leaked into (%d, %d): %+v", x, y, got)
			}
		}
	}

	// Out-of-range reads return the default value, not discard contents.
	for _, c := range []struct{ x, y int }{{-1, 0}, {0, -1}, {600, 0}, {0, 600}} {
		if got := g.PixelAt(c.x, c.y); got != DefaultPixel {
			t.Errorf("PixelAt(%d, %d) = %+v, want DefaultPixel", c.x, c.y, got)
		}
	}
}

// TestTileGridDirtyTracking verifies dirty enumeration and reset.
func TestTileGridDirtyTracking(t *testing.T) {
	g := NewTileGrid(600, 600) // 3x3 tiles
	if got := g.DirtyTiles(); len(got) != 0 {
		t.Fatalf("fresh grid has %d dirty tiles, want 0", len(got))
	}

	g.SetPixel(0, 0, Red)     // tile (0, 0)
	g.SetPixel(300, 300, Red) // tile (1, 1)

	dirty := g.DirtyTiles()
	if len(dirty) != 2 {
		t.Fatalf("got %d dirty tiles, want 2", len(dirty))
	}
	if dirty[0].X() != 0 || dirty[0].Y() != 0 || dirty[1].X() != 1 || dirty[1].Y() != 1 {
		t.Errorf("dirty tiles at (%d,%d) and (%d,%d), want (0,0) and (1,1)",
			dirty[0].X(), dirty[0].Y(), dirty[1].X(), dirty[1].Y())
	}

	g.ClearDirtyFlags()
	if got := g.DirtyTiles(); len(got) != 0 {
		t.Errorf("after ClearDirtyFlags: %d dirty tiles, want 0", len(got))
	}
}

// TestTileGridClone verifies deep copies duplicate every tile.
func TestTileGridClone(t *testing.T) {
	g := NewTileGrid(300, 300)
	g.Fill(Red)
	clone := g.Clone()

	g.SetPixel(280, 280, Blue)
	if got := clone.PixelAt(280, 280); got != Red {
		t.Errorf("clone tracked original mutation: got %+v, want %+v", got, Red)
	}
	if clone.Width() != 300 || clone.Height() != 300 {
		t.Error("clone must copy dimensions")
	}
	if clone.Tile(0, 0) == g.Tile(0, 0) {
		t.Error("clone must duplicate tiles, not share them")
	}
}
