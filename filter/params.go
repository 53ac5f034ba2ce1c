package filter

// Params carries three independent named-parameter mappings for a filter
// invocation. Absent keys resolve to filter-documented defaults through
// the accessor methods; no global validation is performed, so each
// filter clamps its own inputs.
type Params struct {
	Floats  map[string]float64
	Ints    map[string]int
	Strings map[string]string
}

// Float returns the named float parameter, or def when absent.
func (p Params) Float(key string, def float64) float64 {
	if v, ok := p.Floats[key]; ok {
		return v
	}
	return def
}

// Int returns the named integer parameter, or def when absent.
func (p Params) Int(key string, def int) int {
	if v, ok := p.Ints[key]; ok {
		return v
	}
	return def
}

// String returns the named string parameter, or def when absent.
func (p Params) String(key, def string) string {
	if v, ok := p.Strings[key]; ok {
		return v
	}
	return def
}

// FloatParams builds a Params carrying only float values. Convenience
// for the common case of dispatching a Canvas.ApplyFilter-style
// parameter map.
func FloatParams(floats map[string]float64) Params {
	return Params{Floats: floats}
}
