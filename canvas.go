package paintcore

import (
	"image"

	"github.com/google/uuid"
)

// Canvas orchestrates an ordered stack of layers (bottom to top), a
// selection point list, and a bounded undo history. All mutation must be
// serialized by the caller; the canvas assumes one logical editing
// thread.
type Canvas struct {
	width     int
	height    int
	layers    []*Layer
	selection []image.Point
	undo      *UndoStack
}

// NewCanvas creates a canvas of the given pixel dimensions. By default
// it carries one opaque "Background" layer and an undo history bounded
// to DefaultMaxUndoStates; see CanvasOption for alternatives.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		width:  width,
		height: height,
		undo:   NewUndoStack(o.maxUndoStates),
	}
	if o.background {
		c.AddLayer(o.backgroundName)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// AddLayer creates a new layer of canvas size, appends it on top of the
// stack, and returns it.
func (c *Canvas) AddLayer(name string) *Layer {
	layer := NewLayer(name, c.width, c.height)
	c.layers = append(c.layers, layer)
	Logger().Debug("layer added", "name", name, "index", len(c.layers)-1)
	return layer
}

// RemoveLayer removes the layer at index from the paint stack. The layer
// itself stays alive while referenced elsewhere, for example as another
// layer's clip mask. Invalid indices are silent no-ops.
func (c *Canvas) RemoveLayer(index int) {
	if index < 0 || index >= len(c.layers) {
		return
	}
	Logger().Debug("layer removed", "name", c.layers[index].Name(), "index", index)
	c.layers = append(c.layers[:index], c.layers[index+1:]...)
}

// MoveLayer moves a layer from one stack position to another. Invalid
// indices are silent no-ops.
func (c *Canvas) MoveLayer(from, to int) {
	if from < 0 || from >= len(c.layers) || to < 0 || to >= len(c.layers) {
		return
	}
	layer := c.layers[from]
	c.layers = append(c.layers[:from], c.layers[from+1:]...)
	c.layers = append(c.layers[:to], append([]*Layer{layer}, c.layers[to:]...)...)
	Logger().Debug("layer moved", "name", layer.Name(), "from", from, "to", to)
}

// Layer returns the layer at index, or nil for invalid indices.
func (c *Canvas) Layer(index int) *Layer {
	if index < 0 || index >= len(c.layers) {
		return nil
	}
	return c.layers[index]
}

// LayerByID returns the layer with the given stable ID, or nil when no
// layer in the stack carries it.
func (c *Canvas) LayerByID(id uuid.UUID) *Layer {
	for _, l := range c.layers {
		if l.ID() == id {
			return l
		}
	}
	return nil
}

// Layers returns a copy of the layer stack in paint order, bottom first.
func (c *Canvas) Layers() []*Layer {
	out := make([]*Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// LayerCount returns the number of layers in the stack.
func (c *Canvas) LayerCount() int { return len(c.layers) }

// RenderTo clears the target grid and composites every layer into it,
// bottom to top.
func (c *Canvas) RenderTo(target *TileGrid) {
	target.Clear()
	for _, layer := range c.layers {
		layer.RenderTo(target, 0, 0)
	}
}

// CompositeImage renders the full layer stack into a fresh grid and
// returns it as a 16-bit NRGBA image.
func (c *Canvas) CompositeImage() *image.NRGBA64 {
	composite := NewTileGrid(c.width, c.height)
	c.RenderTo(composite)
	return composite.ToImage()
}

// BeginStroke captures a full-canvas undo snapshot, one grid copy per
// layer, tagged "Brush Stroke". It must be called before the stroke
// mutates any pixels: undo restores the state before the action.
func (c *Canvas) BeginStroke() {
	snapshots := make([]*TileGrid, 0, len(c.layers))
	for _, layer := range c.layers {
		snapshots = append(snapshots, layer.Pixels())
	}
	c.undo.PushState(snapshots, "Brush Stroke")
}

// EndStroke marks the end of a stroke. The snapshot was already captured
// by BeginStroke, so there is nothing left to record.
func (c *Canvas) EndStroke() {}

// Undo restores the most recent snapshot, overwriting each layer's live
// pixel grid by layer index. A no-op when no undo is available.
func (c *Canvas) Undo() {
	if !c.undo.CanUndo() {
		return
	}
	c.restore(c.undo.PopState())
}

// Redo re-applies the snapshot ahead of the undo cursor. A no-op when no
// redo is available.
func (c *Canvas) Redo() {
	if !c.undo.CanRedo() {
		return
	}
	c.restore(c.undo.RedoState())
}

func (c *Canvas) restore(snapshots []*TileGrid) {
	for i := 0; i < len(c.layers) && i < len(snapshots); i++ {
		c.layers[i].SetPixels(snapshots[i])
	}
}

// CanUndo reports whether an undo step is available.
func (c *Canvas) CanUndo() bool { return c.undo.CanUndo() }

// CanRedo reports whether a redo step is available.
func (c *Canvas) CanRedo() bool { return c.undo.CanRedo() }

// History returns the canvas's undo stack.
func (c *Canvas) History() *UndoStack { return c.undo }

// DrawBrushStroke blends a circular soft brush into the target layer at
// every point of the stroke. Each point stamps independently with
// linear falloff alpha = (1 - d/radius) * opacity, where radius is
// size/2; overlapping stamps re-blend and compound at their
// intersection. All four channels, including alpha, are blended.
// Invalid layer indices are silent no-ops.
func (c *Canvas) DrawBrushStroke(layerIndex int, points []image.Point, size, opacity float64, color Pixel) {
	layer := c.Layer(layerIndex)
	if layer == nil {
		return
	}
	for _, pt := range points {
		c.stampBrush(layer.Pixels(), pt, size, opacity, func(dest *Pixel, alpha float64) {
			dest.R = lerpChannel(dest.R, color.R, alpha)
			dest.G = lerpChannel(dest.G, color.G, alpha)
			dest.B = lerpChannel(dest.B, color.B, alpha)
			dest.A = lerpChannel(dest.A, color.A, alpha)
		})
	}
}

// EraseBrushStroke reduces the alpha channel under a circular soft brush
// at every point of the stroke, using the same falloff as
// DrawBrushStroke. RGB channels are never modified. Invalid layer
// indices are silent no-ops.
func (c *Canvas) EraseBrushStroke(layerIndex int, points []image.Point, size, opacity float64) {
	layer := c.Layer(layerIndex)
	if layer == nil {
		return
	}
	for _, pt := range points {
		c.stampBrush(layer.Pixels(), pt, size, opacity, func(dest *Pixel, alpha float64) {
			dest.A = uint16(float64(dest.A) * (1 - alpha))
		})
	}
}

// SetSelection stores a copy of the given point list as the current
// selection. No geometric interpretation happens at this level.
func (c *Canvas) SetSelection(points []image.Point) {
	c.selection = make([]image.Point, len(points))
	copy(c.selection, points)
}

// ClearSelection discards the current selection.
func (c *Canvas) ClearSelection() {
	c.selection = nil
}

// HasSelection reports whether a selection is present.
func (c *Canvas) HasSelection() bool {
	return len(c.selection) > 0
}

// Selection returns a copy of the current selection point list.
func (c *Canvas) Selection() []image.Point {
	out := make([]image.Point, len(c.selection))
	copy(out, c.selection)
	return out
}

// ApplyFilter records a filter request on the target layer as an
// adjustment-list entry. Actual dispatch to a registered plugin is the
// filter package's responsibility; see filter.ApplyToGrid. Invalid layer
// indices are silent no-ops.
func (c *Canvas) ApplyFilter(layerIndex int, filterType string, params map[string]float64) {
	layer := c.Layer(layerIndex)
	if layer == nil {
		return
	}
	layer.AddAdjustment(filterType, params)
	Logger().Info("filter recorded", "layer", layer.Name(), "filter", filterType)
}
