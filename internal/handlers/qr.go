package handlers

import (
	"errors"
	"fmt"
	"image/color"
	"net/http"

	"github.com/fogleman/gg"
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/brandkit.link/internal/qrgen"
	"github.com/cristianadrielbraun/brandkit.link/internal/render"
)

// QRCodeHandler generates standalone QR codes for URLs with customization
// options: flat or gradient foreground, module shapes, preview or
// print-resolution output.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	normalizedURL, err := h.normalizeHTTPURL(c.Query("url"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := parseFormat(c.DefaultQuery("format", "png"))
	size := c.DefaultQuery("size", "preview")
	colorMode := c.DefaultQuery("colorMode", "flat")
	shape := qrgen.ParseShape(c.DefaultQuery("qrShape", "rectangle"))

	opts := qrgen.DefaultOptions()
	opts.Shape = shape
	opts.Background = render.ParseHexColor(c.Query("bg"), color.RGBA{255, 255, 255, 255})
	if colorMode == "gradient" {
		opts.Gradient = true
		opts.GradientStart = render.ParseHexColor(c.Query("gradientStart"), color.RGBA{0, 0, 0, 255})
		opts.GradientMiddle = render.ParseHexColor(c.Query("gradientMiddle"), color.RGBA{128, 128, 128, 255})
		opts.GradientEnd = render.ParseHexColor(c.Query("gradientEnd"), color.RGBA{255, 0, 0, 255})
	} else {
		opts.Foreground = render.ParseHexColor(c.Query("fg"), color.RGBA{0, 0, 0, 255})
	}

	// Preview is small; download targets print resolution. Both are
	// generated at module granularity and scaled nearest-neighbor to the
	// exact target edge.
	target := 360
	if size == "download" {
		target = h.cfg.DownloadQRWidth
		opts.ModuleSize = 64
	}

	fmt.Printf("[QR] request: url=%q format=%s size=%s colorMode=%s shape=%s\n",
		normalizedURL, format, size, colorMode, shape)

	qr, err := qrgen.Generate(normalizedURL, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, qrgen.ErrUnencodable) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": fmt.Sprintf("Failed to generate QR code: %v", err)})
		return
	}
	scaled := qrgen.ScaleTo(qr, target)

	// Fixed 7% quiet-zone padding around the code.
	pad := target * 7 / 100
	total := target + 2*pad
	dc := gg.NewContext(total, total)
	if opts.Background.A != 0 {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	dc.DrawImage(scaled, pad, pad)

	c.Header("X-QR-Debug", fmt.Sprintf("format=%s;size=%s;shape=%s;colorMode=%s", format, size, shape, colorMode))
	if size == "download" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="qr.%s"`, format))
	}
	h.writeImage(c, dc.Image(), format, opts.Background)
}
