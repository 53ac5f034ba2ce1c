// Package filter defines the plugin contract consumed by the paintcore
// compositor and bundles the four stock filters (Gaussian blur, unsharp
// mask, smudge, inpaint).
//
// A filter receives a flat, row-major slice of tiles covering
// ceil(width/256) x ceil(height/256) entries, indexed ty*tileCountX+tx,
// and mutates the tiles in place without reslicing. Parameters travel in
// three independent named maps (float, int, string); every filter applies
// a documented default for absent keys and clamps its own inputs to a
// safe range.
//
// Progress and cancellation are cooperative: a filter reports a
// monotonically non-decreasing completion fraction after each tile and
// checks the cancellation predicate at the same cadence, returning
// promptly, with no rollback, once cancellation is signaled. Callers that
// need undo safety must snapshot before invoking a filter.
package filter
