package filter

// Callback exposes a progress reporter and a cancellation predicate to a
// running filter. Either member may be nil; the zero value never
// reports and never cancels.
type Callback struct {
	// Progress receives the completion fraction in [0, 1] after each
	// processed tile. Fractions are monotonically non-decreasing.
	Progress func(fraction float64)

	// Cancelled is polled after each processed tile. Once it returns
	// true the filter exits promptly with no partial-state repair.
	Cancelled func() bool
}

// report invokes the progress reporter when present.
func (cb Callback) report(fraction float64) {
	if cb.Progress != nil {
		cb.Progress(fraction)
	}
}

// cancelled polls the cancellation predicate when present.
func (cb Callback) cancelled() bool {
	return cb.Cancelled != nil && cb.Cancelled()
}
