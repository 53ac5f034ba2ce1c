package paintcore

import (
	"image"
	"testing"
)

// TestCanvasDefaults verifies the default background layer and options.
func TestCanvasDefaults(t *testing.T) {
	c := NewCanvas(512, 512)
	if c.LayerCount() != 1 {
		t.Fatalf("LayerCount = %d, want 1", c.LayerCount())
	}
	if got := c.Layer(0).Name(); got != "Background" {
		t.Errorf("background layer name %q", got)
	}
	if c.Layer(0).Pixels().Width() != 512 || c.Layer(0).Pixels().Height() != 512 {
		t.Error("layer grid must match canvas dimensions")
	}

	bare := NewCanvas(64, 64, WithoutBackgroundLayer())
	if bare.LayerCount() != 0 {
		t.Errorf("WithoutBackgroundLayer: LayerCount = %d", bare.LayerCount())
	}
}

// TestCanvasLayerManagement verifies add, remove, move, and the silent
// no-op contract for invalid indices.
func TestCanvasLayerManagement(t *testing.T) {
	c := NewCanvas(64, 64, WithoutBackgroundLayer())
	a := c.AddLayer("a")
	b := c.AddLayer("b")
	d := c.AddLayer("d")

	if c.Layer(0) != a || c.Layer(1) != b || c.Layer(2) != d {
		t.Fatal("layers must append in paint order, bottom first")
	}
	if c.Layer(-1) != nil || c.Layer(3) != nil {
		t.Error("invalid indices must return nil")
	}

	c.MoveLayer(0, 2)
	if c.Layer(0) != b || c.Layer(1) != d || c.Layer(2) != a {
		t.Error("MoveLayer(0, 2) produced wrong order")
	}

	c.MoveLayer(-1, 1)
	c.MoveLayer(1, 5)
	if c.Layer(0) != b || c.Layer(1) != d || c.Layer(2) != a {
		t.Error("invalid MoveLayer must be a no-op")
	}

	c.RemoveLayer(5)
	c.RemoveLayer(-2)
	if c.LayerCount() != 3 {
		t.Error("invalid RemoveLayer must be a no-op")
	}

	c.RemoveLayer(1)
	if c.LayerCount() != 2 || c.Layer(0) != b || c.Layer(1) != a {
		t.Error("RemoveLayer(1) removed the wrong layer")
	}

	if got := c.LayerByID(a.ID()); got != a {
		t.Error("LayerByID must find layers after reordering")
	}
	if got := c.LayerByID(d.ID()); got != nil {
		t.Error("LayerByID must not find removed layers")
	}
}

// TestCanvasRemovedLayerSurvivesAsMask verifies removing a layer from
// the stack does not invalidate an existing clip-mask reference to it.
func TestCanvasRemovedLayerSurvivesAsMask(t *testing.T) {
	c := NewCanvas(64, 64, WithoutBackgroundLayer())
	paint := c.AddLayer("paint")
	mask := c.AddLayer("mask")
	mask.Pixels().Fill(White)
	if err := paint.SetClipMask(mask); err != nil {
		t.Fatal(err)
	}

	c.RemoveLayer(1)
	if paint.ClipMask() != mask {
		t.Fatal("mask reference lost on removal")
	}
	if got := paint.ClipMask().Pixels().PixelAt(3, 3); got != White {
		t.Errorf("mask content lost: %+v", got)
	}
}

// TestCanvasCompositeMultiplyScenario is the reference scenario: layer0
// opaque white, layer1 opaque red with Multiply at opacity 1 composites
// to opaque red everywhere.
func TestCanvasCompositeMultiplyScenario(t *testing.T) {
	c := NewCanvas(256, 256, WithoutBackgroundLayer())
	c.AddLayer("white").Pixels().Fill(White)
	red := c.AddLayer("red")
	red.Pixels().Fill(Red)
	red.SetBlendMode(BlendMultiply)

	target := NewTileGrid(256, 256)
	c.RenderTo(target)

	for _, pt := range []image.Point{{0, 0}, {128, 128}, {255, 255}, {17, 230}} {
		if got := target.PixelAt(pt.X, pt.Y); got != Red {
			t.Errorf("PixelAt(%d, %d) = %+v, want %+v", pt.X, pt.Y, got, Red)
		}
	}
}

// TestCanvasBrushStrokeFalloff is the reference brush scenario: size 2
// (radius 1), single point, opaque color at opacity 1 over transparent
// black. The center receives the full color; the four axis neighbors at
// distance 1 get zero falloff and stay unchanged.
func TestCanvasBrushStrokeFalloff(t *testing.T) {
	c := NewCanvas(256, 256, WithoutBackgroundLayer())
	layer := c.AddLayer("paint")
	layer.Pixels().Fill(Transparent)

	c.DrawBrushStroke(0, []image.Point{{100, 100}}, 2, 1.0, Red)

	if got := layer.Pixels().PixelAt(100, 100); got != Red {
		t.Errorf("center = %+v, want %+v", got, Red)
	}
	for _, pt := range []image.Point{{99, 100}, {101, 100}, {100, 99}, {100, 101}} {
		if got := layer.Pixels().PixelAt(pt.X, pt.Y); got != Transparent {
			t.Errorf("neighbor (%d, %d) = %+v, want unchanged", pt.X, pt.Y, got)
		}
	}
}

// TestCanvasBrushStrokeCompounds verifies overlapping points re-blend at
// their intersection rather than being limited per stroke.
func TestCanvasBrushStrokeCompounds(t *testing.T) {
	c := NewCanvas(256, 256, WithoutBackgroundLayer())
	layer := c.AddLayer("paint")
	layer.Pixels().Fill(Transparent)

	pt := image.Point{100, 100}
	c.DrawBrushStroke(0, []image.Point{pt}, 8, 0.5, Red)
	single := layer.Pixels().PixelAt(101, 100).R

	layer.Pixels().Fill(Transparent)
	c.DrawBrushStroke(0, []image.Point{pt, pt}, 8, 0.5, Red)
	double := layer.Pixels().PixelAt(101, 100).R

	if double <= single {
		t.Errorf("repeated point must compound: single %d, double %d", single, double)
	}
}

// TestCanvasBrushStrokeInvalidLayer verifies invalid indices are silent
// no-ops.
func TestCanvasBrushStrokeInvalidLayer(t *testing.T) {
	c := NewCanvas(64, 64)
	c.DrawBrushStroke(5, []image.Point{{10, 10}}, 4, 1.0, Red)
	c.EraseBrushStroke(-1, []image.Point{{10, 10}}, 4, 1.0)
}

// TestCanvasEraseNeverTouchesColor verifies erase mutates only alpha,
// monotonically non-increasing with blend strength.
func TestCanvasEraseNeverTouchesColor(t *testing.T) {
	c := NewCanvas(256, 256, WithoutBackgroundLayer())
	layer := c.AddLayer("paint")
	layer.Pixels().Fill(NewPixelRGBA(40000, 30000, 20000, 60000))

	c.EraseBrushStroke(0, []image.Point{{100, 100}}, 10, 0.5)
	p := layer.Pixels().PixelAt(100, 100)
	if p.R != 40000 || p.G != 30000 || p.B != 20000 {
		t.Errorf("erase modified color channels: %+v", p)
	}
	if p.A >= 60000 {
		t.Errorf("erase did not reduce alpha: %d", p.A)
	}
	weaker := p.A

	c.EraseBrushStroke(0, []image.Point{{100, 100}}, 10, 1.0)
	p = layer.Pixels().PixelAt(100, 100)
	if p.A > weaker {
		t.Errorf("stronger erase increased alpha: %d > %d", p.A, weaker)
	}
	if p.R != 40000 || p.G != 30000 || p.B != 20000 {
		t.Errorf("second erase modified color channels: %+v", p)
	}
}

// TestCanvasUndoRedoRoundTrip verifies the stroke snapshot protocol:
// BeginStroke records the pre-stroke state, Undo restores it, Redo
// brings the pre-stroke state back into the cursor's path.
func TestCanvasUndoRedoRoundTrip(t *testing.T) {
	c := NewCanvas(64, 64, WithoutBackgroundLayer())
	layer := c.AddLayer("paint")
	layer.Pixels().Fill(White)

	c.BeginStroke()
	layer.Pixels().Fill(Red)
	c.EndStroke()

	if !c.CanUndo() {
		t.Fatal("CanUndo must be true after a stroke")
	}
	c.Undo()
	if got := c.Layer(0).Pixels().PixelAt(5, 5); got != White {
		t.Errorf("undo restored %+v, want pre-stroke white", got)
	}

	if !c.CanRedo() {
		t.Fatal("CanRedo must be true after undo")
	}
	c.Redo()
	if got := c.Layer(0).Pixels().PixelAt(5, 5); got != White {
		t.Errorf("redo restored %+v; the snapshot holds the pre-stroke state", got)
	}

	// Guarded no-ops when history is exhausted.
	c.Undo()
	c.Undo()
	c.Redo()
	c.Redo()
}

// TestCanvasSelection verifies selection storage has no geometric
// interpretation and copies its input.
func TestCanvasSelection(t *testing.T) {
	c := NewCanvas(64, 64)
	if c.HasSelection() {
		t.Error("fresh canvas must have no selection")
	}

	pts := []image.Point{{1, 2}, {3, 4}}
	c.SetSelection(pts)
	if !c.HasSelection() {
		t.Error("HasSelection must be true after SetSelection")
	}

	pts[0] = image.Point{99, 99}
	if got := c.Selection(); got[0] != (image.Point{1, 2}) {
		t.Error("SetSelection must copy the point list")
	}

	c.ClearSelection()
	if c.HasSelection() {
		t.Error("ClearSelection must discard the selection")
	}
}

// TestCanvasApplyFilterRecordsAdjustment verifies the core-level
// behavior: the filter is recorded on the layer's adjustment list, not
// dispatched.
func TestCanvasApplyFilterRecordsAdjustment(t *testing.T) {
	c := NewCanvas(64, 64)
	c.ApplyFilter(0, "Gaussian Blur", map[string]float64{"sigma": 2.5})

	adjs := c.Layer(0).Adjustments()
	if len(adjs) != 1 || adjs[0].Type != "Gaussian Blur" || adjs[0].Params["sigma"] != 2.5 {
		t.Errorf("recorded adjustments: %+v", adjs)
	}

	c.ApplyFilter(9, "Gaussian Blur", nil) // silent no-op
}

// TestCanvasResizePreservesOverlap verifies crop/pad resize semantics.
func TestCanvasResizePreservesOverlap(t *testing.T) {
	c := NewCanvas(300, 300, WithoutBackgroundLayer())
	layer := c.AddLayer("paint")
	layer.Pixels().Fill(Red)

	c.Resize(400, 200)
	if c.Width() != 400 || c.Height() != 200 {
		t.Fatalf("canvas dimensions (%d, %d)", c.Width(), c.Height())
	}
	g := c.Layer(0).Pixels()
	if g.Width() != 400 || g.Height() != 200 {
		t.Fatal("layer grid must match new canvas dimensions")
	}
	if got := g.PixelAt(299, 199); got != Red {
		t.Errorf("overlap pixel lost: %+v", got)
	}
	if got := g.PixelAt(350, 100); got != DefaultPixel {
		t.Errorf("padded area = %+v, want DefaultPixel", got)
	}
}

// TestCanvasResizeDiscard verifies the destructive variant empties all
// content.
func TestCanvasResizeDiscard(t *testing.T) {
	c := NewCanvas(128, 128, WithoutBackgroundLayer())
	c.AddLayer("paint").Pixels().Fill(Red)

	c.ResizeDiscard(256, 256)
	if got := c.Layer(0).Pixels().PixelAt(10, 10); got != DefaultPixel {
		t.Errorf("content survived destructive resize: %+v", got)
	}
}

// TestCanvasResizeResample verifies resampling preserves a solid fill.
func TestCanvasResizeResample(t *testing.T) {
	c := NewCanvas(128, 128, WithoutBackgroundLayer())
	c.AddLayer("paint").Pixels().Fill(Red)

	c.ResizeResample(64, 64)
	g := c.Layer(0).Pixels()
	if g.Width() != 64 || g.Height() != 64 {
		t.Fatal("layer grid must match new canvas dimensions")
	}
	got := g.PixelAt(32, 32)
	if got.R < 60000 || got.G > 5000 || got.B > 5000 || got.A < 60000 {
		t.Errorf("resampled solid red came back as %+v", got)
	}
}

// TestCanvasCompositeImage verifies the image export path.
func TestCanvasCompositeImage(t *testing.T) {
	c := NewCanvas(300, 200, WithoutBackgroundLayer())
	c.AddLayer("paint").Pixels().Fill(Red)

	img := c.CompositeImage()
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 200 {
		t.Fatalf("image bounds %v", img.Bounds())
	}
	r, g, b, a := img.NRGBA64At(150, 100).R, img.NRGBA64At(150, 100).G,
		img.NRGBA64At(150, 100).B, img.NRGBA64At(150, 100).A
	if r != MaxChannel || g != 0 || b != 0 || a != MaxChannel {
		t.Errorf("composited pixel (%d, %d, %d, %d)", r, g, b, a)
	}
}
