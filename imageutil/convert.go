package imageutil

import "image"

// BT.601 luma weights, the same ones OpenCV uses for COLOR_BGR2GRAY.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luminance returns the perceptual brightness of c in the range [0, 255]
// using the standard formula: Y = 0.299*R + 0.587*G + 0.114*B
func Luminance(c RGB) float64 {
	return LumaR*float64(c.R) + LumaG*float64(c.G) + LumaB*float64(c.B)
}

// LuminanceAt returns the luminance of the pixel at (x, y). Coordinates
// are absolute, so callers must offset by img.Bounds().Min themselves.
func LuminanceAt(img image.Image, x, y int) float64 {
	if rgba, ok := img.(*RGBAImage); ok {
		return Luminance(rgba.GetRGB(x, y))
	}
	return Luminance(RGBFromColor(img.At(x, y)))
}
