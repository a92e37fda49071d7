package render

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses an RRGGBB value with optional leading '#'.
// The literal "transparent" yields a fully transparent color. Anything
// unparsable falls back to defaultColor.
func ParseHexColor(param string, defaultColor color.RGBA) color.RGBA {
	if param == "" {
		return defaultColor
	}

	if strings.ToLower(param) == "transparent" {
		return color.RGBA{0, 0, 0, 0}
	}

	param = strings.TrimPrefix(param, "#")
	if len(param) != 6 {
		return defaultColor
	}

	r, err1 := strconv.ParseUint(param[0:2], 16, 8)
	g, err2 := strconv.ParseUint(param[2:4], 16, 8)
	b, err3 := strconv.ParseUint(param[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return defaultColor
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// lerpColor performs linear interpolation between two colors.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: 255,
	}
}

// isLight reports whether a color reads as light, used to pick readable
// text colors over filled panels.
func isLight(c color.RGBA) bool {
	// Rec. 601 luma approximation.
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return luma > 160
}
