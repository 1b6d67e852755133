package httpx

import (
	"net/http"
)

// NotFound renders the HTML 404 page, keeping the layout so the viewer
// can navigate away.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Blogdeck - Page Not Found",
		PageTitle:   "Page Not Found",
		CurrentPage: PageNotFound,
	}).
		With("Message", "The page you're looking for doesn't exist.").
		Build()

	w.WriteHeader(http.StatusNotFound)
	if h.T != nil {
		h.renderPage(w, r, data)
		return
	}
	http.Error(w, "Page not found", http.StatusNotFound)
}
