package httpx

import (
	"errors"
	"net/http"

	"github.com/blogdeck/blogdeck/internal/apiclient"
)

func postPageMeta(title string) PageMeta {
	return PageMeta{Title: "Blogdeck - " + title, PageTitle: title, CurrentPage: PagePost}
}

// PostDetail renders a single post with its comment thread. The stored
// contents are author-supplied HTML; the template pipes them through the
// script-stripping sanitizer before marking them safe.
func (h *UIHandlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	token := GetTokenFromContext(r.Context())
	post, err := h.PostSvc.Get(r.Context(), token, id)
	if err != nil {
		var statusErr *apiclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			h.NotFound(w, r)
			return
		}
		h.logger().Error("post fetch failed", "post_id", id, "error", err)
		data := NewTemplateData(r, postPageMeta("Post")).
			WithError("Unable to load this post. Please try again.").
			Build()
		h.renderPage(w, r, data)
		return
	}

	data := NewTemplateData(r, postPageMeta(post.Title)).
		With("Post", post).
		Build()
	h.renderPage(w, r, data)
}

// PostDelete removes a post and sends the viewer back to the dashboard.
func (h *UIHandlers) PostDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	token := GetTokenFromContext(r.Context())
	if err := h.PostSvc.Delete(r.Context(), token, id); err != nil {
		h.logger().Error("post delete failed", "post_id", id, "error", err)
		triggerToast(w, "Unable to delete the post.", "error")
		http.Error(w, "Unable to delete the post.", http.StatusInternalServerError)
		return
	}

	HTMX(w).Trigger("showToast", map[string]any{
		"message": "Post deleted.",
		"type":    "success",
	}).Redirect("/dashboard")
}
