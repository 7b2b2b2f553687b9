// Package img2ascii renders raster images as ASCII art.
//
// An image is sampled on a grid of Config.Width columns, with the number
// of rows derived from the aspect ratio and CellAspect. Each sample's
// luminance selects a glyph from Config.Ramp.
//
//	lines := img2ascii.Render(img, img2ascii.DefaultConfig().WithWidth(80))
//	fmt.Println(img2ascii.Join(lines))
package img2ascii

import (
	"errors"
	"io/fs"
	"os"

	"github.com/wbrown/img2ascii/imageutil"
)

// LoadImage checks that path exists and decodes it. A missing path yields
// a *FileNotFoundError; anything that stops decoding yields a *DecodeError.
func LoadImage(path string) (*imageutil.RGBAImage, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, &DecodeError{Path: path, Err: err}
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// ImageToASCII loads the image at path and renders it with cfg. Nothing is
// returned alongside an error, so output is all-or-nothing.
func ImageToASCII(path string, cfg Config) (string, error) {
	img, err := LoadImage(path)
	if err != nil {
		return "", err
	}
	return Join(Render(img, cfg)), nil
}
