package filter

import (
	"testing"

	"github.com/ngpaint/paintcore"
)

// TestSmudgeContextDragsColor verifies a pickup followed by a dab at a
// new position carries color forward.
func TestSmudgeContextDragsColor(t *testing.T) {
	tile := paintcore.NewTile(0, 0)
	tile.Fill(paintcore.White)
	// A red patch to drag to the right.
	for y := 95; y <= 105; y++ {
		for x := 95; x <= 105; x++ {
			tile.Set(x, y, paintcore.Red)
		}
	}

	ctx := NewSmudgeContext(5)
	ctx.PickUp(tile, 100, 100)
	ctx.Dab(tile, 104, 100, 1.0, nil)

	// The dab center received the dragged patch center (red), replacing
	// what was there.
	if got := tile.At(104, 100); got.G > 20000 {
		t.Errorf("red was not dragged onto (104, 100): %+v", got)
	}
}

// TestSmudgeContextDabBeforePickupIsNoOp verifies an unprimed context
// leaves the tile untouched.
func TestSmudgeContextDabBeforePickupIsNoOp(t *testing.T) {
	tile := paintcore.NewTile(0, 0)
	tile.Fill(paintcore.Green)

	ctx := NewSmudgeContext(5)
	ctx.Dab(tile, 100, 100, 1.0, nil)

	if got := tile.At(100, 100); got != paintcore.Green {
		t.Errorf("unprimed dab mutated the tile: %+v", got)
	}
}

// TestSmudgeContextIsolation verifies two contexts never share pickup
// state: the historical process-wide buffer is gone.
func TestSmudgeContextIsolation(t *testing.T) {
	redTile := paintcore.NewTile(0, 0)
	redTile.Fill(paintcore.Red)
	whiteTile := paintcore.NewTile(0, 0)
	whiteTile.Fill(paintcore.White)

	a := NewSmudgeContext(5)
	b := NewSmudgeContext(5)
	a.PickUp(redTile, 100, 100)
	b.PickUp(whiteTile, 100, 100)

	// Dabbing with b onto a white tile must not introduce a's red.
	b.Dab(whiteTile, 120, 120, 1.0, nil)
	if got := whiteTile.At(120, 120); got != paintcore.White {
		t.Errorf("context contamination: %+v", got)
	}

	// And a's buffer still holds red, unaffected by b's activity.
	a.Dab(whiteTile, 50, 50, 1.0, nil)
	if got := whiteTile.At(50, 50); got.G > 20000 {
		t.Errorf("context a lost its pickup: %+v", got)
	}
}

// TestSmudgeFilterDragsThroughCenter verifies the registered filter
// drags color along its center stroke without touching far corners.
func TestSmudgeFilterDragsThroughCenter(t *testing.T) {
	tile := paintcore.NewTile(0, 0)
	tile.Fill(paintcore.White)
	center := paintcore.TileSize / 2
	// A black column crossing the stroke path: the drag must pull dark
	// color past it to the right.
	for y := center - 8; y <= center+8; y++ {
		tile.Set(center, y, paintcore.Black)
	}

	Smudge{}.Process([]*paintcore.Tile{tile}, paintcore.TileSize, paintcore.TileSize,
		Params{
			Floats: map[string]float64{"strength": 1},
			Ints:   map[string]int{"radius": 5},
		}, Callback{})

	if got := tile.At(0, 0); got != paintcore.White {
		t.Errorf("corner touched: %+v", got)
	}
	if got := tile.At(center+3, center); got.G == paintcore.MaxChannel {
		t.Error("no color dragged past the column")
	}
}
