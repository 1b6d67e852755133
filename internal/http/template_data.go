package httpx

import (
	"net/http"
)

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// basePageData builds the layout fields every page shares, including
// the viewer identity when one was resolved.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":       meta.Title,
		"PageTitle":   meta.PageTitle,
		"CurrentPage": meta.CurrentPage,
		"IsAdmin":     false,
	}

	if identity, ok := GetIdentityFromContext(r.Context()); ok {
		data["Viewer"] = identity
		data["IsAdmin"] = identity.IsAdmin()
	}

	return data
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
// Templates always index Errors, so it defaults to an empty map.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	data := basePageData(r, meta)
	data["Errors"] = map[string]string{}
	return &TemplateDataBuilder{
		data: data,
		r:    r,
	}
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
