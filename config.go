package img2ascii

import "github.com/wbrown/img2ascii/imageutil"

const (
	// DefaultWidth is the output width in characters when none is given.
	DefaultWidth = 100

	// DefaultRamp orders glyphs from the darkest luminance bucket to the
	// lightest.
	DefaultRamp = "@%#*+=-:. "

	// CellAspect compensates for terminal cells being roughly twice as
	// tall as they are wide.
	CellAspect = 0.5
)

// Config holds the rendering parameters. It is a value type: the With*
// methods return modified copies and never touch the receiver.
type Config struct {
	// Width is the number of characters per output line.
	Width int
	// Invert flips luminance (255 - v) before the ramp lookup.
	Invert bool
	// Ramp is the lookup table from luminance bucket to glyph, darkest
	// first. Indexed by rune, so multi-byte glyphs are allowed.
	Ramp string
	// Interpolation selects how the image is resampled to the output grid.
	Interpolation imageutil.Interpolation
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Ramp:          DefaultRamp,
		Interpolation: imageutil.InterpolationNearest,
	}
}

// WithWidth returns a copy of c with the given output width.
func (c Config) WithWidth(width int) Config {
	c.Width = width
	return c
}

// WithInvert returns a copy of c with inversion set.
func (c Config) WithInvert(invert bool) Config {
	c.Invert = invert
	return c
}

// WithRamp returns a copy of c using ramp. An empty ramp is ignored and
// the current one is kept.
func (c Config) WithRamp(ramp string) Config {
	if ramp == "" {
		return c
	}
	c.Ramp = ramp
	return c
}

// WithInterpolation returns a copy of c with the given resampling method.
func (c Config) WithInterpolation(interp imageutil.Interpolation) Config {
	c.Interpolation = interp
	return c
}

// Normalize clamps the width to at least 1 and restores the default ramp
// if it is empty.
func (c Config) Normalize() Config {
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Ramp == "" {
		c.Ramp = DefaultRamp
	}
	return c
}
