package paintcore

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default: one "Background" layer, 50 undo states.
//	c := paintcore.NewCanvas(1920, 1080)
//
//	// Custom history bound, no initial layer.
//	c := paintcore.NewCanvas(800, 600,
//	    paintcore.WithMaxUndoStates(10),
//	    paintcore.WithoutBackgroundLayer())
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	maxUndoStates  int
	backgroundName string
	background     bool
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		maxUndoStates:  DefaultMaxUndoStates,
		backgroundName: "Background",
		background:     true,
	}
}

// WithMaxUndoStates bounds the canvas undo history to n states.
func WithMaxUndoStates(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.maxUndoStates = n
	}
}

// WithBackgroundLayer names the initial layer created with the canvas.
func WithBackgroundLayer(name string) CanvasOption {
	return func(o *canvasOptions) {
		o.backgroundName = name
		o.background = true
	}
}

// WithoutBackgroundLayer creates the canvas with an empty layer stack.
func WithoutBackgroundLayer() CanvasOption {
	return func(o *canvasOptions) {
		o.background = false
	}
}
