package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontCache parses the embedded Go fonts once. Faces are created per
// call: truetype faces carry mutable hinting state and must not be
// shared between concurrent renders.
type fontCache struct {
	regular *truetype.Font
	bold    *truetype.Font
}

func newFontCache() (*fontCache, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse goregular: %v", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gobold: %v", err)
	}
	return &fontCache{regular: regular, bold: bold}, nil
}

// face returns a fresh font.Face for the given weight and point size.
func (fc *fontCache) face(bold bool, size float64) font.Face {
	fnt := fc.regular
	if bold {
		fnt = fc.bold
	}
	return truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
