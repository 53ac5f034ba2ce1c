package paintcore

// BlendMode selects the per-pixel RGB combination function a layer uses
// during compositing. Every mode is combined with standard alpha-over
// compositing; the mode only changes the RGB result.
type BlendMode uint8

// Blend mode constants, matching the twelve modes a layer may declare.
const (
	// BlendNormal replaces destination RGB with source RGB.
	BlendNormal BlendMode = iota

	// BlendMultiply darkens: result = dest * src.
	BlendMultiply

	// BlendScreen lightens: result = 1 - (1-dest)*(1-src).
	BlendScreen

	// BlendOverlay multiplies or screens depending on the destination.
	BlendOverlay

	// BlendSoftLight is a soft, non-clipping variant of hard light.
	BlendSoftLight

	// BlendHardLight multiplies or screens depending on the source.
	BlendHardLight

	// BlendColorDodge brightens the destination toward the source.
	BlendColorDodge

	// BlendColorBurn darkens the destination toward the source.
	BlendColorBurn

	// BlendDarken keeps the per-channel minimum.
	BlendDarken

	// BlendLighten keeps the per-channel maximum.
	BlendLighten

	// BlendDifference takes the per-channel absolute difference.
	BlendDifference

	// BlendExclusion is a lower-contrast variant of difference.
	BlendExclusion
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendSoftLight:  "soft-light",
	BlendHardLight:  "hard-light",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
}

// String returns the canonical lowercase name of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "unknown"
}

// ParseBlendMode resolves a canonical blend mode name. The second return
// value reports whether the name was recognized; unrecognized names
// resolve to BlendNormal.
func ParseBlendMode(name string) (BlendMode, bool) {
	for m, n := range blendModeNames {
		if n == name {
			return BlendMode(m), true
		}
	}
	return BlendNormal, false
}
