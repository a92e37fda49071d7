// Package pages holds the site page components.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const homeHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>brandkit.link — brand assets with scannable QR codes</title>
<link rel="stylesheet" href="/web/static/styles.css"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<main class="container">
<h1>brandkit.link</h1>
<p>Fill in your brand details and download a business card, banner, logo or poster with a scannable QR code.</p>
<form id="asset-form" action="/api/asset" method="get">
<fieldset>
<legend>Template</legend>
<select name="template">
<option value="card">Business card (1050&times;600)</option>
<option value="banner">Banner (1500&times;500)</option>
<option value="logo">Logo (800&times;800)</option>
<option value="poster">Poster (900&times;1350)</option>
</select>
</fieldset>
<fieldset>
<legend>Brand</legend>
<label>Name <input type="text" name="name" maxlength="64" required/></label>
<label>Tagline <input type="text" name="tagline" maxlength="120"/></label>
<label>Contact <input type="text" name="contact" maxlength="120"/></label>
<label>URL <input type="url" name="url" placeholder="https://example.com" required/></label>
</fieldset>
<fieldset>
<legend>Colors</legend>
<label>Primary <input type="color" name="primary" value="#1F2937"/></label>
<label>Secondary <input type="color" name="secondary" value="#3B82F6"/></label>
<label>Color mode
<select name="colorMode">
<option value="flat">Flat</option>
<option value="gradient">Gradient</option>
</select>
</label>
</fieldset>
<fieldset>
<legend>Output</legend>
<label>Format
<select name="format">
<option value="png">PNG</option>
<option value="jpg">JPG</option>
</select>
</label>
<input type="hidden" name="size" value="download"/>
</fieldset>
<button type="submit">Generate &amp; download</button>
</form>
<section id="preview">
<h2>Preview</h2>
<img id="preview-img" alt="asset preview"/>
</section>
<script>
const form = document.getElementById('asset-form');
const img = document.getElementById('preview-img');
function refreshPreview() {
  const params = new URLSearchParams(new FormData(form));
  params.set('size', 'preview');
  if (form.url.value && form.name.value) {
    img.src = '/api/asset?' + params.toString();
  }
}
form.addEventListener('input', refreshPreview);
</script>
</main>
</body>
</html>
`

// HomePage renders the asset form page.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, homeHTML)
		return err
	})
}
