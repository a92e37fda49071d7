package components

import (
	"context"
	"fmt"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

func variantClasses(v Variant) string {
	switch v {
	case VariantError:
		return "border-red-500 text-red-700"
	case VariantWarning:
		return "border-amber-500 text-amber-700"
	case VariantInfo:
		return "border-sky-500 text-sky-700"
	default:
		return "border-emerald-500 text-emerald-700"
	}
}

// Toast renders a toast notification fragment for HTMX swaps.
func Toast(props ToastProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes := twmerge.Merge(
			"toast fixed bottom-4 right-4 rounded-lg border bg-white px-4 py-3 shadow-lg",
			variantClasses(props.Variant),
		)
		if _, err := fmt.Fprintf(w, `<div class="%s" role="status">`, templ.EscapeString(classes)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p class="font-semibold">%s</p>`, templ.EscapeString(props.Title)); err != nil {
			return err
		}
		if props.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="text-sm">%s</p>`, templ.EscapeString(props.Description)); err != nil {
				return err
			}
		}
		if props.Dismissible {
			if _, err := io.WriteString(w, `<button class="toast-close" onclick="this.closest('.toast').remove()">&times;</button>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
