package paintcore

// MaxChannel is the maximum value of a single color channel.
const MaxChannel = 65535

// Pixel is a four-channel color value at 16 bits per channel, linear
// range [0, 65535]. The zero value is fully transparent black; freshly
// allocated storage holds DefaultPixel (opaque black) instead, matching
// the convention that alpha defaults to fully opaque.
type Pixel struct {
	R, G, B, A uint16
}

// DefaultPixel is the value stored in untouched tile memory and returned
// for out-of-range reads: opaque black.
var DefaultPixel = Pixel{A: MaxChannel}

// NewPixel creates an opaque pixel from RGB channel values.
func NewPixel(r, g, b uint16) Pixel {
	return Pixel{R: r, G: g, B: b, A: MaxChannel}
}

// NewPixelRGBA creates a pixel from all four channel values.
func NewPixelRGBA(r, g, b, a uint16) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Black       = NewPixel(0, 0, 0)
	White       = NewPixel(MaxChannel, MaxChannel, MaxChannel)
	Red         = NewPixel(MaxChannel, 0, 0)
	Green       = NewPixel(0, MaxChannel, 0)
	Blue        = NewPixel(0, 0, MaxChannel)
	Transparent = Pixel{}
)

// norm converts a 16-bit channel value to the normalized [0, 1] range.
func norm(v uint16) float64 {
	return float64(v) / MaxChannel
}

// denorm converts a normalized value back to a 16-bit channel, clamping
// to the valid range.
func denorm(v float64) uint16 {
	return uint16(clamp01(v) * MaxChannel)
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpChannel blends two 16-bit channel values by alpha in [0, 1].
func lerpChannel(dst, src uint16, alpha float64) uint16 {
	return uint16(float64(dst)*(1-alpha) + float64(src)*alpha)
}
