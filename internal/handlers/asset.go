package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/brandkit.link/internal/qrgen"
	"github.com/cristianadrielbraun/brandkit.link/internal/render"
)

// AssetHandler composes a downloadable brand asset (business card, banner,
// logo or poster) with an embedded QR code for the requested URL.
func (h *Handler) AssetHandler(c *gin.Context) {
	template, err := render.ParseTemplate(c.Query("template"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	normalizedURL, err := h.normalizeHTTPURL(c.Query("url"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name parameter is required"})
		return
	}
	if len([]rune(name)) > 64 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must be 64 characters or fewer"})
		return
	}

	palette := render.DefaultPalette(template)
	palette.Primary = render.ParseHexColor(c.Query("primary"), palette.Primary)
	palette.Secondary = render.ParseHexColor(c.Query("secondary"), palette.Secondary)
	palette.Text = render.ParseHexColor(c.Query("text"), palette.Text)
	bg := render.ParseHexColor(c.Query("bg"), palette.Background)
	// Only the logo template produces transparent output; the print
	// products stay opaque.
	if bg.A != 0 || template == render.TemplateLogo {
		palette.Background = bg
	}

	format := parseFormat(c.DefaultQuery("format", "png"))
	size := c.DefaultQuery("size", "preview")

	req := render.Request{
		Template: template,
		URL:      normalizedURL,
		Name:     name,
		Tagline:  clampRunes(strings.TrimSpace(c.Query("tagline")), 120),
		Contact:  clampRunes(strings.TrimSpace(c.Query("contact")), 120),
		Palette:  palette,
		Gradient: c.DefaultQuery("colorMode", "flat") == "gradient",
		Preview:  size != "download",
	}

	fmt.Printf("[asset] request: template=%s format=%s size=%s gradient=%t\n",
		template, format, size, req.Gradient)

	img, err := h.engine.Compose(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, qrgen.ErrUnencodable) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": fmt.Sprintf("Failed to compose asset: %v", err)})
		return
	}

	c.Header("X-Asset-Debug", fmt.Sprintf("template=%s;format=%s;size=%s", template, format, size))
	if size == "download" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="brandkit-%s.%s"`, template, format))
	}
	h.writeImage(c, img, format, palette.Background)
}

func clampRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
