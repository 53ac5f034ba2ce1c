package paintcore

import "time"

// DefaultMaxUndoStates is the history bound used when none is given.
const DefaultMaxUndoStates = 50

// UndoState is one full-canvas snapshot: an independent deep copy of
// every layer's pixel grid in layer order, plus a human-readable
// description and a Unix-seconds timestamp.
type UndoState struct {
	description string
	timestamp   int64
	snapshots   []*TileGrid
}

// Description returns the state's human-readable description.
func (s *UndoState) Description() string { return s.description }

// Timestamp returns the Unix time in seconds at which the state was
// captured.
func (s *UndoState) Timestamp() int64 { return s.timestamp }

// LayerCount returns the number of layer snapshots in the state.
func (s *UndoState) LayerCount() int { return len(s.snapshots) }

// UndoStack is a bounded, linear history of full-canvas snapshots with a
// current-position cursor. The cursor sits after the most recently
// applied state: undo is available while it is above zero, redo while it
// is below the history length.
type UndoStack struct {
	states       []*UndoState
	currentIndex int
	maxStates    int
}

// NewUndoStack creates an empty history bounded to maxStates entries.
// Non-positive bounds fall back to DefaultMaxUndoStates.
func NewUndoStack(maxStates int) *UndoStack {
	if maxStates <= 0 {
		maxStates = DefaultMaxUndoStates
	}
	return &UndoStack{maxStates: maxStates}
}

// PushState records a new state. Any states beyond the current cursor
// are discarded first (a new action clears the redo future), every
// supplied snapshot is deep-copied and timestamped, and the oldest
// states are evicted from the front once the bound is exceeded, clamping
// the cursor down by the number evicted.
func (u *UndoStack) PushState(snapshots []*TileGrid, description string) {
	if u.currentIndex < len(u.states) {
		u.states = u.states[:u.currentIndex]
	}

	state := &UndoState{
		description: description,
		timestamp:   time.Now().Unix(),
		snapshots:   cloneGrids(snapshots),
	}
	u.states = append(u.states, state)
	u.currentIndex++

	if excess := len(u.states) - u.maxStates; excess > 0 {
		u.states = u.states[excess:]
		u.currentIndex -= excess
		if u.currentIndex < 0 {
			u.currentIndex = 0
		}
	}
}

// PopState moves the cursor back one state and returns deep copies of
// that state's layer snapshots. The state stays in history so the same
// action can be redone. Returns nil when undo is unavailable.
func (u *UndoStack) PopState() []*TileGrid {
	if !u.CanUndo() {
		return nil
	}
	u.currentIndex--
	return cloneGrids(u.states[u.currentIndex].snapshots)
}

// RedoState returns deep copies of the state at the current cursor and
// advances the cursor. Returns nil when redo is unavailable.
func (u *UndoStack) RedoState() []*TileGrid {
	if !u.CanRedo() {
		return nil
	}
	state := u.states[u.currentIndex]
	u.currentIndex++
	return cloneGrids(state.snapshots)
}

// CanUndo reports whether a state is available behind the cursor.
func (u *UndoStack) CanUndo() bool {
	return u.currentIndex > 0
}

// CanRedo reports whether a state is available at or beyond the cursor.
func (u *UndoStack) CanRedo() bool {
	return u.currentIndex < len(u.states)
}

// StateCount returns the number of states currently held.
func (u *UndoStack) StateCount() int { return len(u.states) }

// CurrentIndex returns the cursor position in [0, StateCount()].
func (u *UndoStack) CurrentIndex() int { return u.currentIndex }

// UndoDescription returns the description of the state the next undo
// would restore, or empty when undo is unavailable.
func (u *UndoStack) UndoDescription() string {
	if !u.CanUndo() {
		return ""
	}
	return u.states[u.currentIndex-1].description
}

// RedoDescription returns the description of the state the next redo
// would restore, or empty when redo is unavailable.
func (u *UndoStack) RedoDescription() string {
	if !u.CanRedo() {
		return ""
	}
	return u.states[u.currentIndex].description
}

// Clear empties the history and resets the cursor.
func (u *UndoStack) Clear() {
	u.states = nil
	u.currentIndex = 0
}

// SetMaxStates changes the history bound for subsequent pushes.
// Already-recorded states are not trimmed until the next push.
// Non-positive bounds fall back to DefaultMaxUndoStates.
func (u *UndoStack) SetMaxStates(maxStates int) {
	if maxStates <= 0 {
		maxStates = DefaultMaxUndoStates
	}
	u.maxStates = maxStates
}

// MaxStates returns the current history bound.
func (u *UndoStack) MaxStates() int { return u.maxStates }

func cloneGrids(grids []*TileGrid) []*TileGrid {
	out := make([]*TileGrid, 0, len(grids))
	for _, g := range grids {
		out = append(out, g.Clone())
	}
	return out
}
