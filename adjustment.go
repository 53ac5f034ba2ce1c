package paintcore

// Adjustment is a named, parameterized, non-destructive transformation
// attached to a layer. Adjustments are evaluated at composite time on a
// transient copy of each source pixel; the layer's own buffer is never
// mutated.
//
// Recognized types and their parameters:
//   - "brightness": "amount" in [-1, 1], added per channel in normalized
//     space (default 0).
//   - "contrast": "amount" >= -1, scaling around the 0.5 pivot
//     (default 0).
//   - "invert": no parameters.
//
// Unrecognized types are identity transforms. This keeps entries that
// merely record intent, such as filter names recorded by
// Canvas.ApplyFilter, from altering pixel data.
type Adjustment struct {
	Type   string
	Params map[string]float64
}

// param returns a named parameter or a default when absent.
func (a Adjustment) param(key string, def float64) float64 {
	if v, ok := a.Params[key]; ok {
		return v
	}
	return def
}

// apply evaluates the adjustment on a single pixel. Alpha is never
// modified.
func (a Adjustment) apply(p Pixel) Pixel {
	switch a.Type {
	case "brightness":
		amount := a.param("amount", 0)
		p.R = denorm(norm(p.R) + amount)
		p.G = denorm(norm(p.G) + amount)
		p.B = denorm(norm(p.B) + amount)
	case "contrast":
		amount := a.param("amount", 0)
		if amount < -1 {
			amount = -1
		}
		scale := 1 + amount
		p.R = denorm((norm(p.R)-0.5)*scale + 0.5)
		p.G = denorm((norm(p.G)-0.5)*scale + 0.5)
		p.B = denorm((norm(p.B)-0.5)*scale + 0.5)
	case "invert":
		p.R = MaxChannel - p.R
		p.G = MaxChannel - p.G
		p.B = MaxChannel - p.B
	}
	return p
}

// applyAdjustments runs an adjustment list over one pixel, in order.
func applyAdjustments(adjustments []Adjustment, p Pixel) Pixel {
	for _, a := range adjustments {
		p = a.apply(p)
	}
	return p
}
