// Package paintcore implements the editing core of a tiled raster image
// editor: a fixed-block pixel store, a layer compositor with the twelve
// standard separable blend modes, a circular soft brush engine, and a
// bounded undo/redo history over full-canvas snapshots.
//
// Pixels are 16 bits per channel (RGBA, linear [0, 65535]) and stored in
// 256x256 tiles. A TileGrid densely covers a layer's bounding rectangle and
// tracks per-tile dirty state. Layers stack bottom-to-top on a Canvas and
// composite through the standard "over" operator combined with a per-mode
// RGB function.
//
// The core is single-threaded: no operation blocks or yields, and callers
// serialize all mutation. Malformed calls never panic; out-of-range
// coordinates resolve to a shared discard object, invalid indices are silent
// no-ops, and numeric inputs are clamped by the responsible setter.
//
// Filter plugins live in the filter subpackage, which defines the tile-slice
// contract (row-major, ceil(w/256) x ceil(h/256) entries) together with the
// progress/cancellation callback every plugin honors.
//
// paintcore produces no log output by default. Call SetLogger to enable it.
package paintcore
