package img2ascii

import (
	"image"
	"math"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// maxLuminance is the upper bound of imageutil.Luminance.
const maxLuminance = 255

// TargetHeight returns the number of output lines for a source image of
// srcWidth x srcHeight pixels rendered at width characters. The height
// keeps the source aspect ratio scaled by CellAspect and is never below 1.
func TargetHeight(srcWidth, srcHeight, width int) int {
	if srcWidth <= 0 || srcHeight <= 0 || width <= 0 {
		return 1
	}
	h := math.Round(float64(srcHeight) * float64(width) / float64(srcWidth) * CellAspect)
	return max(int(h), 1)
}

// RampIndex maps a luminance in [0, 255] onto one of n buckets. The
// result is always within [0, n-1].
func RampIndex(lum float64, n int) int {
	idx := int(math.Floor(lum / (maxLuminance + 1) * float64(n)))
	return min(max(idx, 0), n-1)
}

// Render converts img to lines of text, one character per sampled pixel.
// Every line holds exactly cfg.Width characters and there are
// TargetHeight lines. A zero width is treated as 1.
func Render(img image.Image, cfg Config) []string {
	cfg = cfg.Normalize()
	ramp := []rune(cfg.Ramp)

	bounds := img.Bounds()
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()
	width := cfg.Width
	height := TargetHeight(srcWidth, srcHeight, width)

	if cfg.Interpolation != imageutil.InterpolationNearest && srcWidth > 0 && srcHeight > 0 {
		img = imageutil.Resize(img, width, height, cfg.Interpolation)
		bounds = img.Bounds()
		srcWidth, srcHeight = width, height
	}

	lines := make([]string, height)
	var sb strings.Builder
	for y := range height {
		sb.Reset()
		sb.Grow(width)
		srcY := bounds.Min.Y + y*srcHeight/height
		for x := range width {
			srcX := bounds.Min.X + x*srcWidth/width
			lum := imageutil.LuminanceAt(img, srcX, srcY)
			if cfg.Invert {
				lum = maxLuminance - lum
			}
			sb.WriteRune(ramp[RampIndex(lum, len(ramp))])
		}
		lines[y] = sb.String()
	}

	return lines
}

// Join assembles rendered lines into a single newline-separated block
// without a trailing newline.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}
