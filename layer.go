package paintcore

import (
	"errors"

	"github.com/google/uuid"
)

// ErrClipMaskCycle is returned when a clip-mask assignment would create
// a reference cycle between layers.
var ErrClipMaskCycle = errors.New("paintcore: clip mask assignment would create a cycle")

// Layer is a named, independently composited raster surface. A layer
// owns its pixel grid exclusively, but the layer itself is shared: it
// may simultaneously sit in a canvas stack and serve as another layer's
// clip mask.
type Layer struct {
	id          uuid.UUID
	name        string
	pixels      *TileGrid
	opacity     float64
	blendMode   BlendMode
	visible     bool
	clipMask    *Layer
	adjustments []Adjustment
}

// NewLayer creates a visible, fully opaque, normal-mode layer with a
// fresh pixel grid of the given dimensions and a stable unique ID.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{
		id:        uuid.New(),
		name:      name,
		pixels:    NewTileGrid(width, height),
		opacity:   1.0,
		blendMode: BlendNormal,
		visible:   true,
	}
}

// ID returns the layer's stable identifier. The ID survives reordering
// and resizing and identifies the layer for the canvas lookup methods.
func (l *Layer) ID() uuid.UUID { return l.id }

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// SetName sets the layer name.
func (l *Layer) SetName(name string) { l.name = name }

// Opacity returns the layer opacity in [0, 1].
func (l *Layer) Opacity() float64 { return l.opacity }

// SetOpacity sets the layer opacity, clamped to [0, 1].
func (l *Layer) SetOpacity(opacity float64) { l.opacity = clamp01(opacity) }

// BlendMode returns the layer's blend mode.
func (l *Layer) BlendMode() BlendMode { return l.blendMode }

// SetBlendMode sets the layer's blend mode.
func (l *Layer) SetBlendMode(mode BlendMode) { l.blendMode = mode }

// Visible reports whether the layer participates in compositing.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible sets the visibility flag.
func (l *Layer) SetVisible(visible bool) { l.visible = visible }

// Pixels returns the layer's pixel grid.
func (l *Layer) Pixels() *TileGrid { return l.pixels }

// SetPixels replaces the layer's pixel grid. A nil grid is a no-op.
func (l *Layer) SetPixels(grid *TileGrid) {
	if grid == nil {
		return
	}
	l.pixels = grid
}

// ClipMask returns the layer's clip mask, or nil when unset.
func (l *Layer) ClipMask() *Layer { return l.clipMask }

// SetClipMask assigns another layer as this layer's clip mask. The
// mask's alpha channel scales this layer's source alpha during
// compositing. Passing nil clears the mask.
//
// Assignments that would create a cycle through the mask chain
// (including self-masking) are rejected with ErrClipMaskCycle, leaving
// the current mask unchanged.
func (l *Layer) SetClipMask(mask *Layer) error {
	for m := mask; m != nil; m = m.clipMask {
		if m == l {
			Logger().Warn("clip mask rejected", "layer", l.name, "reason", "cycle")
			return ErrClipMaskCycle
		}
	}
	l.clipMask = mask
	return nil
}

// AddAdjustment appends an adjustment to the layer's adjustment list.
// The parameter map is copied.
func (l *Layer) AddAdjustment(adjType string, params map[string]float64) {
	copied := make(map[string]float64, len(params))
	for k, v := range params {
		copied[k] = v
	}
	l.adjustments = append(l.adjustments, Adjustment{Type: adjType, Params: copied})
}

// RemoveAdjustment removes the adjustment at index. Invalid indices are
// silent no-ops.
func (l *Layer) RemoveAdjustment(index int) {
	if index < 0 || index >= len(l.adjustments) {
		return
	}
	l.adjustments = append(l.adjustments[:index], l.adjustments[index+1:]...)
}

// ClearAdjustments removes every adjustment.
func (l *Layer) ClearAdjustments() {
	l.adjustments = nil
}

// Adjustments returns a copy of the adjustment list.
func (l *Layer) Adjustments() []Adjustment {
	out := make([]Adjustment, len(l.adjustments))
	copy(out, l.adjustments)
	return out
}

// RenderTo blends every pixel of every tile into the target grid at the
// given pixel offset using the layer's blend mode and opacity. The
// offset addresses whole tiles: it is divided by TileSize to pick the
// destination tile column and row.
//
// Invisible layers and layers with opacity <= 0 render nothing.
// Adjustments are applied to a transient copy of each source pixel
// before blending; a clip mask, when present, scales the source alpha
// by the mask's alpha at the same coordinate.
func (l *Layer) RenderTo(target *TileGrid, x, y int) {
	if !l.visible || l.opacity <= 0 {
		return
	}

	for ty := 0; ty < l.pixels.TileCountY(); ty++ {
		for tx := 0; tx < l.pixels.TileCountX(); tx++ {
			srcTile := l.pixels.Tile(tx, ty)
			dstTile := target.Tile(tx+x/TileSize, ty+y/TileSize)

			for py := 0; py < TileSize; py++ {
				for px := 0; px < TileSize; px++ {
					src := srcTile.At(px, py)
					if len(l.adjustments) > 0 {
						src = applyAdjustments(l.adjustments, src)
					}
					if l.clipMask != nil {
						maskA := norm(l.clipMask.pixels.PixelAt(tx*TileSize+px, ty*TileSize+py).A)
						src.A = uint16(float64(src.A) * maskA)
					}

					dst := dstTile.At(px, py)
					BlendPixels(&dst, src, l.blendMode, l.opacity)
					dstTile.Set(px, py, dst)
				}
			}
		}
	}
}
