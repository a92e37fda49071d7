package components

// Variant selects a toast color treatment.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ToastProps configures a toast fragment rendered for HTMX swaps.
type ToastProps struct {
	Title       string
	Description string
	Variant     Variant
	Dismissible bool
}
