package handlers

import (
	"bytes"
	"image/png"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrQuery(overrides map[string]string) string {
	params := url.Values{}
	params.Set("url", "https://example.com")
	for k, v := range overrides {
		params.Set(k, v)
	}
	return "/api/qr?" + params.Encode()
}

func TestQRCodeHandlerPreview(t *testing.T) {
	r := newTestRouter(t)
	w := doGet(r, qrQuery(nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("X-QR-Debug"), "size=preview")

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	// 360 target plus 7% padding on each side.
	assert.Equal(t, 360+2*25, img.Bounds().Dx())
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestQRCodeHandlerDownload(t *testing.T) {
	r := newTestRouter(t)
	w := doGet(r, qrQuery(map[string]string{"size": "download"}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "qr.png")

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2000+2*140, img.Bounds().Dx())
}

func TestQRCodeHandlerShapesAndGradient(t *testing.T) {
	r := newTestRouter(t)

	for _, shape := range []string{"rectangle", "circle", "liquid", "chain", "hstripe", "vstripe"} {
		w := doGet(r, qrQuery(map[string]string{"qrShape": shape, "colorMode": "gradient"}))
		assert.Equal(t, http.StatusOK, w.Code, "shape %s", shape)
	}
}

func TestQRCodeHandlerBadURL(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/qr")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(r, qrQuery(map[string]string{"url": "ftp://example.com"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
