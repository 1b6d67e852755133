package httpx

import (
	"net/http"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

func dashboardPageMeta() PageMeta {
	return PageMeta{Title: "Blogdeck - Dashboard", PageTitle: "Your Posts", CurrentPage: PageDashboard}
}

// Dashboard renders the viewer's post list. A failed fetch renders an
// explicit error state rather than an empty list, so the viewer can
// tell "no posts yet" apart from "the platform is down".
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := GetTokenFromContext(r.Context())

	builder := NewTemplateData(r, dashboardPageMeta())

	posts, err := h.PostSvc.List(r.Context(), token)
	if err != nil {
		h.logger().Error("post list fetch failed", "error", err)
		data := builder.
			WithError("Unable to load your posts. Please try again.").
			With("PostsLoadFailed", true).
			With("Posts", []model.Post(nil)).
			Build()
		h.renderPage(w, r, data)
		return
	}

	published := make([]model.Post, 0, len(posts))
	drafts := make([]model.Post, 0)
	for _, p := range posts {
		if p.IsPublished {
			published = append(published, p)
		} else {
			drafts = append(drafts, p)
		}
	}

	data := builder.
		With("Posts", posts).
		With("Published", published).
		With("Drafts", drafts).
		Build()
	h.renderPage(w, r, data)
}

// Home redirects the bare root to the dashboard; the session gate takes
// care of anonymous viewers from there.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
