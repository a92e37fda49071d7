package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// markSVG is the built-in brand mark: a ghosted rounded tile with a solid
// dot and tick, designed to sit on colored panels.
const markSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<rect x="4" y="4" width="56" height="56" rx="14" fill="#FFFFFF" fill-opacity="0.22"/>
<circle cx="32" cy="34" r="13" fill="#FFFFFF"/>
<rect x="29" y="9" width="6" height="11" rx="3" fill="#FFFFFF"/>
</svg>`

// rasterizeMark renders the built-in SVG mark to a square bitmap.
func rasterizeMark(edge int) (image.Image, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("invalid mark size %d", edge)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(markSVG))
	if err != nil {
		return nil, fmt.Errorf("parse mark SVG: %v", err)
	}
	icon.SetTarget(0, 0, float64(edge), float64(edge))

	rgba := image.NewRGBA(image.Rect(0, 0, edge, edge))
	scanner := rasterx.NewScannerGV(edge, edge, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(edge, edge, scanner), 1)
	return rgba, nil
}
