// Package render composites brand assets: fixed-size raster templates
// that layer gradients, panels, text runs and a QR bitmap onto a canvas.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"unicode"

	"github.com/fogleman/gg"

	"github.com/cristianadrielbraun/brandkit.link/internal/qrgen"
)

// Template identifies one of the fixed asset layouts.
type Template string

const (
	TemplateCard   Template = "card"
	TemplateBanner Template = "banner"
	TemplateLogo   Template = "logo"
	TemplatePoster Template = "poster"
)

// ParseTemplate validates a template request parameter.
func ParseTemplate(s string) (Template, error) {
	switch Template(s) {
	case TemplateCard, TemplateBanner, TemplateLogo, TemplatePoster:
		return Template(s), nil
	case "":
		return "", fmt.Errorf("template parameter is required")
	default:
		return "", fmt.Errorf("unknown template %q", s)
	}
}

// Dimensions returns the full-resolution output size of a template.
// Preview renders are exactly half on each axis.
func (t Template) Dimensions() (int, int) {
	switch t {
	case TemplateBanner:
		return 1500, 500
	case TemplateLogo:
		return 800, 800
	case TemplatePoster:
		return 900, 1350
	default: // card
		return 1050, 600
	}
}

// Palette is the per-template default color set.
type Palette struct {
	Primary    color.RGBA
	Secondary  color.RGBA
	Background color.RGBA
	Text       color.RGBA
}

// DefaultPalette returns the color defaults for a template.
func DefaultPalette(t Template) Palette {
	switch t {
	case TemplateBanner:
		return Palette{
			Primary:    color.RGBA{124, 58, 237, 255},
			Secondary:  color.RGBA{236, 72, 153, 255},
			Background: color.RGBA{255, 255, 255, 255},
			Text:       color.RGBA{255, 255, 255, 255},
		}
	case TemplateLogo:
		return Palette{
			Primary:    color.RGBA{14, 165, 233, 255},
			Secondary:  color.RGBA{99, 102, 241, 255},
			Background: color.RGBA{248, 250, 252, 255},
			Text:       color.RGBA{15, 23, 42, 255},
		}
	case TemplatePoster:
		return Palette{
			Primary:    color.RGBA{6, 95, 70, 255},
			Secondary:  color.RGBA{16, 185, 129, 255},
			Background: color.RGBA{255, 255, 255, 255},
			Text:       color.RGBA{17, 24, 39, 255},
		}
	default: // card
		return Palette{
			Primary:    color.RGBA{31, 41, 55, 255},
			Secondary:  color.RGBA{59, 130, 246, 255},
			Background: color.RGBA{255, 255, 255, 255},
			Text:       color.RGBA{17, 24, 39, 255},
		}
	}
}

// Request describes one asset to compose. URL must already be normalized.
type Request struct {
	Template Template
	URL      string
	Name     string
	Tagline  string
	Contact  string

	Palette  Palette
	Gradient bool
	Preview  bool
}

// Engine composites assets. It owns the parsed fonts and is safe for
// concurrent use; each render gets its own drawing context.
type Engine struct {
	fonts *fontCache
}

// NewEngine parses the embedded fonts and returns a ready engine.
func NewEngine() (*Engine, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &Engine{fonts: fonts}, nil
}

// Compose renders the requested asset. Output dimensions depend only on
// the template and preview flag, never on the input text.
func (e *Engine) Compose(req Request) (image.Image, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.URL == "" {
		return nil, fmt.Errorf("url is required")
	}

	fullW, fullH := req.Template.Dimensions()
	scale := 1.0
	if req.Preview {
		scale = 0.5
	}

	s := scene{
		Request: req,
		engine:  e,
		scale:   scale,
		dc:      gg.NewContext(int(float64(fullW)*scale), int(float64(fullH)*scale)),
	}

	var err error
	switch req.Template {
	case TemplateBanner:
		err = s.drawBanner()
	case TemplateLogo:
		err = s.drawLogo()
	case TemplatePoster:
		err = s.drawPoster()
	default:
		err = s.drawCard()
	}
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", req.Template, err)
	}

	return s.dc.Image(), nil
}

// scene carries one in-progress render. All layout constants in the
// template files are full-resolution pixels; px() applies the preview
// scale.
type scene struct {
	Request
	engine *Engine
	scale  float64
	dc     *gg.Context
}

func (s *scene) px(v float64) float64 { return v * s.scale }

func (s *scene) setFont(bold bool, size float64) {
	s.dc.SetFontFace(s.engine.fonts.face(bold, s.px(size)))
}

// fillGradient paints a 45-degree linear gradient (bottom-left to
// top-right) over the given rectangle.
func (s *scene) fillGradient(x, y, w, h float64, from, to color.RGBA) {
	grad := gg.NewLinearGradient(x, y+h, x+w, y)
	grad.AddColorStop(0, from)
	grad.AddColorStop(0.5, lerpColor(from, to, 0.5))
	grad.AddColorStop(1, to)
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// fillPanel paints a rectangle with either the gradient or the flat
// primary color, per the request's color mode.
func (s *scene) fillPanel(x, y, w, h float64) {
	if s.Gradient {
		s.fillGradient(x, y, w, h, s.Palette.Primary, s.Palette.Secondary)
		return
	}
	s.dc.SetColor(s.Palette.Primary)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// panelText picks a readable text color for content drawn over the
// filled panel.
func (s *scene) panelText() color.RGBA {
	if isLight(s.Palette.Primary) {
		return color.RGBA{17, 24, 39, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

// truncate shortens a string with a trailing ellipsis until it fits
// maxWidth under the context's current font face.
func (s *scene) truncate(text string, maxWidth float64) string {
	if w, _ := s.dc.MeasureString(text); w <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + "…"
		if w, _ := s.dc.MeasureString(candidate); w <= maxWidth {
			return candidate
		}
	}
	return "…"
}

// drawQRTile renders a white rounded tile with the QR bitmap for the
// request URL centered in it. x, y, edge are full-resolution pixels.
// The tile padding leaves the quiet zone that keeps the code scannable
// over gradient backgrounds.
func (s *scene) drawQRTile(x, y, edge float64) error {
	tx, ty, te := s.px(x), s.px(y), s.px(edge)

	s.dc.SetColor(color.RGBA{255, 255, 255, 255})
	s.dc.DrawRoundedRectangle(tx, ty, te, te, te*0.06)
	s.dc.Fill()

	// One pixel per module so the slot scale below only ever upscales;
	// downscaling a QR bitmap drops module rows.
	opts := qrgen.DefaultOptions()
	opts.ModuleSize = 1
	opts.Foreground = color.RGBA{17, 24, 39, 255}
	qr, err := qrgen.Generate(s.URL, opts)
	if err != nil {
		return err
	}
	modules := qr.Bounds().Dx()

	// Quiet zone of at least 4 module widths on every side (pad >=
	// 4*slot/modules with slot = te-2*pad), never thinner than an
	// eighth of the tile.
	pad := math.Ceil(4 * te / float64(modules+8))
	if floor := te / 8; pad < floor {
		pad = floor
	}
	slot := int(te - 2*pad)
	if slot < modules {
		return fmt.Errorf("%w: %d modules will not fit a %dpx slot", qrgen.ErrUnencodable, modules, slot)
	}
	s.dc.DrawImage(qrgen.ScaleTo(qr, slot), int(tx+pad), int(ty+pad))
	return nil
}

// drawMark composites the built-in SVG mark at the given position.
func (s *scene) drawMark(x, y, edge float64) error {
	mark, err := rasterizeMark(int(s.px(edge)))
	if err != nil {
		return err
	}
	s.dc.DrawImage(mark, int(s.px(x)), int(s.px(y)))
	return nil
}

// initials derives a one- or two-letter monogram from the brand name.
func initials(name string) string {
	var letters []rune
	for _, f := range strings.Fields(name) {
		letters = append(letters, unicode.ToUpper([]rune(f)[0]))
		if len(letters) == 2 {
			break
		}
	}
	if len(letters) == 0 {
		return "?"
	}
	return string(letters)
}
