package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/brandkit.link/web/components"
)

// GenericToast returns a toast component rendered as HTML for HTMX swaps.
func (h *Handler) GenericToast(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	variant := c.PostForm("variant")
	dismissible := c.PostForm("dismissible") == "on"

	var v components.Variant
	switch variant {
	case "error", "destructive":
		v = components.VariantError
	case "warning":
		v = components.VariantWarning
	case "info":
		v = components.VariantInfo
	default:
		v = components.VariantSuccess
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	_ = components.Toast(components.ToastProps{
		Title:       title,
		Description: description,
		Variant:     v,
		Dismissible: dismissible,
	}).Render(c.Request.Context(), c.Writer)
}
