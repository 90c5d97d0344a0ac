package ascii

// Ramp is an ordered set of single-byte glyphs, from the lightest (drawn for
// luminance 0) to the densest (drawn for luminance 255).
type Ramp string

// DefaultRamp is the ten-glyph ramp used when a [Mapper] has none set.
const DefaultRamp Ramp = " .:-=+*#%@"

// Glyph returns the glyph for the given luminance, scaled linearly so that
// index = floor(lum / 255 * (len(r) - 1)).
// An empty ramp falls back to [DefaultRamp].
func (r Ramp) Glyph(lum uint8) byte {
	if r == "" {
		r = DefaultRamp
	}

	return r[int(lum)*(len(r)-1)/255]
}
