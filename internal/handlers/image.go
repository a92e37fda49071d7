package handlers

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a cleaned absolute URL.
func (h *Handler) normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	// Cap length to avoid abuse
	if len(v) > h.cfg.MaxURLLength {
		return "", fmt.Errorf("URL is too long")
	}
	return u.String(), nil
}

// writeImage streams an image as PNG or, flattened onto an opaque
// background, as JPEG.
func (h *Handler) writeImage(c *gin.Context, img image.Image, format string, jpegBg color.RGBA) {
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cfg.CacheMaxAge.Seconds())))

	if format == "jpg" {
		bg := color.RGBA{jpegBg.R, jpegBg.G, jpegBg.B, 255}
		if jpegBg.A == 0 {
			bg = color.RGBA{255, 255, 255, 255}
		}
		bounds := img.Bounds()
		flat := imaging.New(bounds.Dx(), bounds.Dy(), bg)
		flat = imaging.Overlay(flat, img, image.Point{}, 1.0)

		c.Header("Content-Type", "image/jpeg")
		if err := jpeg.Encode(c.Writer, flat, &jpeg.Options{Quality: 92}); err != nil {
			c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to encode JPEG: %v", err)})
		}
		return
	}

	c.Header("Content-Type", "image/png")
	if err := png.Encode(c.Writer, img); err != nil {
		c.JSON(500, gin.H{"error": "Failed to send image"})
	}
}

// parseFormat accepts png/jpg/jpeg and defaults anything else to png.
func parseFormat(s string) string {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return "jpg"
	default:
		return "png"
	}
}
