package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/http/validation"
)

// --- Post form (create/edit) ---

const (
	maxTitleLength       = 120
	maxDescriptionLength = 300
	// Multipart parse ceiling; individual image limits are enforced separately.
	maxPostFormMemory = 8 << 20
)

// postFormFields are the inputs the post form renders. Server errors
// naming anything else are collapsed into a general message.
//
//nolint:gochecknoglobals // static read-only list shared by create and edit
var postFormFields = []string{"title", "description", "blogContents", "topics", "image", "isPublished"}

// PostFormData carries the viewer's draft through validation failures so
// the form re-renders with nothing lost.
type PostFormData struct {
	Title        string
	Description  string
	BlogContents string
	Topics       []string
	TopicInput   string
	IsPublished  bool
	Image        *model.Upload
	ImageRef     *model.ImageRef // existing image shown in edit mode
}

func (d PostFormData) toSubmission() model.PostSubmission {
	return model.PostSubmission{
		Title:        d.Title,
		Description:  d.Description,
		BlogContents: d.BlogContents,
		Topics:       d.Topics,
		IsPublished:  d.IsPublished,
		Image:        d.Image,
	}
}

func postFormTitles(mode FormMode) (string, string) {
	if mode == FormModeEdit {
		return "Blogdeck - Edit Post", "Edit Post"
	}
	return "Blogdeck - New Post", "New Post"
}

// PostCreatePage renders the empty post form.
func (h *UIHandlers) PostCreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderPostForm(w, r, map[string]any{
		"Mode":     FormModeCreate,
		"FormData": PostFormData{},
	})
}

// PostEditPage renders the post form prefilled with the stored post.
func (h *UIHandlers) PostEditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	token := GetTokenFromContext(r.Context())
	post, err := h.PostSvc.Get(r.Context(), token, id)
	if err != nil {
		h.logger().Error("post fetch for edit failed", "post_id", id, "error", err)
		h.NotFound(w, r)
		return
	}

	h.renderPostForm(w, r, map[string]any{
		"Mode":   FormModeEdit,
		"PostID": id,
		"FormData": PostFormData{
			Title:        post.Title,
			Description:  post.Description,
			BlogContents: post.BlogContents,
			Topics:       post.Topics,
			IsPublished:  post.IsPublished,
			ImageRef:     post.Image,
		},
	})
}

// PostCreateSubmit handles the new-post form post.
func (h *UIHandlers) PostCreateSubmit(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[PostFormData]{
		W: w, R: r, Mode: FormModeCreate,
		Parser:         parsePostForm,
		Submit:         h.submitPostForm,
		Renderer:       h.renderPostForm,
		SuccessURL:     "/dashboard",
		SuccessMessage: "Post created.",
		KnownFields:    postFormFields,
	})
}

// PostEditSubmit handles the edit-post form post.
func (h *UIHandlers) PostEditSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	HandleForm(FormHandlerOpts[PostFormData]{
		W: w, R: r, Mode: FormModeEdit,
		Parser:         parsePostForm,
		Submit:         h.submitPostForm,
		Renderer:       h.renderPostFormKeepingImage(id),
		SuccessURL:     "/dashboard",
		SuccessMessage: "Post updated.",
		KnownFields:    postFormFields,
		ExtraData:      map[string]any{"PostID": id},
	})
}

// renderPostFormKeepingImage restores the stored cover image on an
// error re-render; the submitted draft cannot carry the binary payload
// itself, so it is fetched back from the platform.
func (h *UIHandlers) renderPostFormKeepingImage(id string) FormRenderer {
	return func(w http.ResponseWriter, r *http.Request, data map[string]any) {
		if draft, ok := data["FormData"].(PostFormData); ok && draft.ImageRef == nil {
			token := GetTokenFromContext(r.Context())
			if post, err := h.PostSvc.Get(r.Context(), token, id); err == nil && post != nil && post.Image != nil {
				draft.ImageRef = post.Image
				data["FormData"] = draft
			}
		}
		h.renderPostForm(w, r, data)
	}
}

func (h *UIHandlers) submitPostForm(ctx context.Context, token, id string, data PostFormData) error {
	if id == "" {
		_, err := h.PostSvc.Create(ctx, token, data.toSubmission())
		return err
	}
	_, err := h.PostSvc.Update(ctx, token, id, data.toSubmission())
	return err
}

// parsePostForm reads the multipart post form and runs local checks. The
// image is validated here so an oversized or mistyped file is rejected
// before any platform call.
func parsePostForm(r *http.Request) (PostFormData, map[string]string) {
	_ = r.ParseMultipartForm(maxPostFormMemory)

	data := PostFormData{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		BlogContents: r.FormValue("blogContents"),
		Topics:       formTopics(r),
		IsPublished:  r.FormValue("isPublished") == "true" || r.FormValue("isPublished") == "on",
	}

	errs := validation.New().
		Validate("title", data.Title, validation.Required("Title", maxTitleLength)).
		Validate("description", data.Description,
			validation.Required("Description", maxDescriptionLength)).
		Validate("blogContents", data.BlogContents, requiredContents).
		Errors()

	upload, uploadErr := readImageUpload(r, "image", MaxPostImageBytes)
	if uploadErr != "" {
		errs["image"] = uploadErr
	}
	data.Image = upload

	return data, errs
}

// requiredContents only checks presence; the editor produces HTML of
// unbounded length and the platform enforces its own cap.
func requiredContents(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Content is required."
	}
	return ""
}

// formTopics reads the committed topic chips, dropping anything the chip
// rules would never have admitted (tampered or hand-crafted requests).
func formTopics(r *http.Request) []string {
	var topics []string
	for _, raw := range r.Form["topics"] {
		result := model.ApplyTopicInput(topics, "", raw+",")
		topics = result.Topics
	}
	return topics
}

func (h *UIHandlers) renderPostForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			title, pageTitle := postFormTitles(mode)
			return PageMeta{Title: title, PageTitle: pageTitle, CurrentPage: PagePostForm}
		},
	})
	h.renderPage(w, r, data)
}

// --- Topic chip fragments (htmx) ---

// TopicInput applies one keystroke's worth of topic-editing rules and
// re-renders the chip editor fragment. The previous input value rides
// along so a silent rejection can restore it.
func (h *UIHandlers) TopicInput(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	topics := r.Form["topics"]
	prev := r.FormValue("prevInput")
	value := r.FormValue("topicInput")

	result := model.ApplyTopicInput(topics, prev, value)
	h.renderTopicEditor(w, result.Topics, result.Input)
}

// TopicRemove deletes one chip and re-renders the editor fragment.
func (h *UIHandlers) TopicRemove(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	topics := model.RemoveTopic(r.Form["topics"], r.FormValue("topic"))
	h.renderTopicEditor(w, topics, r.FormValue("topicInput"))
}

func (h *UIHandlers) renderTopicEditor(w http.ResponseWriter, topics []string, input string) {
	err := h.T.RenderNamed(w, "topic-editor", map[string]any{
		"Topics":     topics,
		"TopicInput": input,
	})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
