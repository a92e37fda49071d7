package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/brandkit.link/internal/qrgen"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	require.NoError(t, err)
	return e
}

func baseRequest(tmpl Template) Request {
	return Request{
		Template: tmpl,
		URL:      "https://example.com",
		Name:     "Acme Robotics",
		Tagline:  "Machines with manners",
		Contact:  "hello@acme.example",
		Palette:  DefaultPalette(tmpl),
	}
}

func TestComposeDimensions(t *testing.T) {
	e := newTestEngine(t)

	for _, tmpl := range []Template{TemplateCard, TemplateBanner, TemplateLogo, TemplatePoster} {
		fullW, fullH := tmpl.Dimensions()

		img, err := e.Compose(baseRequest(tmpl))
		require.NoError(t, err, "template %s", tmpl)
		assert.Equal(t, fullW, img.Bounds().Dx(), "template %s width", tmpl)
		assert.Equal(t, fullH, img.Bounds().Dy(), "template %s height", tmpl)

		req := baseRequest(tmpl)
		req.Preview = true
		img, err = e.Compose(req)
		require.NoError(t, err, "template %s preview", tmpl)
		assert.Equal(t, fullW/2, img.Bounds().Dx(), "template %s preview width", tmpl)
		assert.Equal(t, fullH/2, img.Bounds().Dy(), "template %s preview height", tmpl)
	}
}

func TestComposeDeterministic(t *testing.T) {
	e := newTestEngine(t)
	req := baseRequest(TemplateCard)
	req.Gradient = true

	encode := func() []byte {
		img, err := e.Compose(req)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))
		return buf.Bytes()
	}

	assert.Equal(t, encode(), encode())
}

func TestComposeValidation(t *testing.T) {
	e := newTestEngine(t)

	req := baseRequest(TemplateCard)
	req.Name = "   "
	_, err := e.Compose(req)
	assert.Error(t, err)

	req = baseRequest(TemplateCard)
	req.URL = ""
	_, err = e.Compose(req)
	assert.Error(t, err)
}

func TestComposeOverlongTextStaysFixedSize(t *testing.T) {
	e := newTestEngine(t)

	req := baseRequest(TemplateBanner)
	req.Name = strings.Repeat("Hypergalactic ", 20)
	req.Tagline = strings.Repeat("very long tagline ", 30)

	img, err := e.Compose(req)
	require.NoError(t, err)
	assert.Equal(t, 1500, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())
}

func TestComposeQRTileIsWhite(t *testing.T) {
	e := newTestEngine(t)
	req := baseRequest(TemplateBanner)
	req.Gradient = true

	img, err := e.Compose(req)
	require.NoError(t, err)

	// Just inside the banner QR tile corner, within the quiet zone.
	r, g, b, _ := img.At(1060+10, 70+10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestComposeQRQuietZone(t *testing.T) {
	e := newTestEngine(t)
	req := baseRequest(TemplateBanner)
	req.URL = "https://a.io"

	img, err := e.Compose(req)
	require.NoError(t, err)

	// Banner QR tile: 360px square at (1060, 70). Find the dark-module
	// bounding box inside it, insetting past the tile's rounded corners
	// where the dark panel shows through.
	const tileX, tileY, tile, inset = 1060, 70, 360, 30
	minX, minY, maxX, maxY := tileX+tile, tileY+tile, -1, -1
	for y := tileY + inset; y < tileY+tile-inset; y++ {
		for x := tileX + inset; x < tileX+tile-inset; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r>>8 < 0x80 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	require.NotEqual(t, -1, maxX, "expected dark modules inside the tile")

	opts := qrgen.DefaultOptions()
	opts.ModuleSize = 1
	native, err := qrgen.Generate(req.URL, opts)
	require.NoError(t, err)
	modules := native.Bounds().Dx()

	qrW := maxX - minX + 1
	moduleW := float64(qrW) / float64(modules)
	need := 4 * moduleW
	assert.GreaterOrEqual(t, float64(minX-tileX)+0.5, need, "left margin")
	assert.GreaterOrEqual(t, float64(tileX+tile-1-maxX)+0.5, need, "right margin")
	assert.GreaterOrEqual(t, float64(minY-tileY)+0.5, need, "top margin")
	assert.GreaterOrEqual(t, float64(tileY+tile-1-maxY)+0.5, need, "bottom margin")
}

func TestComposeConcurrentRenders(t *testing.T) {
	e := newTestEngine(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Compose(baseRequest(TemplateCard))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestComposeLongURL(t *testing.T) {
	e := newTestEngine(t)

	// A dense code still fits the logo's small tile at native resolution.
	req := baseRequest(TemplateLogo)
	req.URL = "https://example.com/" + strings.Repeat("p", 380)
	img, err := e.Compose(req)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())

	// Beyond the tile's module capacity the compose fails cleanly.
	req.URL = "https://example.com/" + strings.Repeat("p", 1200)
	_, err = e.Compose(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, qrgen.ErrUnencodable))
}

func TestLogoTransparentBackground(t *testing.T) {
	e := newTestEngine(t)
	req := baseRequest(TemplateLogo)
	req.Palette.Background = color.RGBA{0, 0, 0, 0}

	img, err := e.Compose(req)
	require.NoError(t, err)

	// Top-left corner is outside the badge and stays transparent.
	_, _, _, a := img.At(2, 2).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestParseTemplate(t *testing.T) {
	tmpl, err := ParseTemplate("poster")
	require.NoError(t, err)
	assert.Equal(t, TemplatePoster, tmpl)

	_, err = ParseTemplate("")
	assert.Error(t, err)
	_, err = ParseTemplate("flyer")
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}

	assert.Equal(t, color.RGBA{255, 0, 128, 255}, ParseHexColor("#FF0080", fallback))
	assert.Equal(t, color.RGBA{255, 0, 128, 255}, ParseHexColor("ff0080", fallback))
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, ParseHexColor("transparent", fallback))
	assert.Equal(t, fallback, ParseHexColor("xyz", fallback))
	assert.Equal(t, fallback, ParseHexColor("", fallback))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AR", initials("Acme Robotics"))
	assert.Equal(t, "A", initials("acme"))
	assert.Equal(t, "AB", initials("alpha beta gamma"))
	assert.Equal(t, "?", initials("   "))
}

func TestTruncate(t *testing.T) {
	e := newTestEngine(t)
	s := &scene{engine: e, scale: 1, dc: gg.NewContext(400, 100)}

	s.setFont(false, 24)
	long := strings.Repeat("wide text ", 50)
	got := s.truncate(long, 200)
	assert.True(t, strings.HasSuffix(got, "…"))
	w, _ := s.dc.MeasureString(got)
	assert.LessOrEqual(t, w, 200.0)

	assert.Equal(t, "short", s.truncate("short", 200))
}
