package httpx

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/service"
)

// AuthUIService is a minimal interface for the login and sign-up flows.
type AuthUIService interface {
	Login(ctx context.Context, creds model.Credentials) (string, error)
	Register(ctx context.Context, reg model.Registration) (string, error)
}

// PostsUIService is a minimal interface for post UI needs.
type PostsUIService interface {
	List(ctx context.Context, token string) ([]model.Post, error)
	Get(ctx context.Context, token, id string) (*model.Post, error)
	Create(ctx context.Context, token string, sub model.PostSubmission) (*model.Post, error)
	Update(ctx context.Context, token, id string, sub model.PostSubmission) (*model.Post, error)
	Delete(ctx context.Context, token, id string) error
}

// AccountUIService is a minimal interface for account settings needs.
type AccountUIService interface {
	UpdateDetails(ctx context.Context, token string, req model.AccountUpdate) error
	ChangePassword(ctx context.Context, token string, req model.PasswordChange) error
}

// SessionInvalidator drops cached identities after logout or account changes.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, token string)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthUIService      = (*service.AuthService)(nil)
	_ PostsUIService     = (*service.PostService)(nil)
	_ AccountUIService   = (*service.AccountService)(nil)
	_ SessionInvalidator = (*service.SessionService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T          *TemplateRenderer
	AuthSvc    AuthUIService
	PostSvc    PostsUIService
	AccountSvc AccountUIService
	Sessions   SessionInvalidator
	Logger     *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// renderPage renders a full page or just the content fragment for htmx
// navigation, depending on the request.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if flash := PopFlash(w, r); flash != "" {
		data["Flash"] = flash
	}

	var err error
	if WantsPartial(r) {
		err = h.T.RenderPartial(w, r, data)
	} else {
		err = h.T.RenderFull(w, r, data)
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// FormFrameOpts captures the parameters required to normalize common form data.
type FormFrameOpts struct {
	R           *http.Request
	Data        map[string]any
	DefaultMode FormMode
	MetaForMode func(FormMode) PageMeta
}

// prepareFormFrame normalizes common form rendering fields (Errors, Mode, base layout).
// Returns the hydrated data map and the resolved form mode for further customization.
func prepareFormFrame(opts FormFrameOpts) (map[string]any, FormMode) {
	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok || data["Errors"] == nil {
		data["Errors"] = map[string]string{}
	}

	mode := resolveFormMode(data["Mode"], opts.DefaultMode)
	data["Mode"] = string(mode)

	if opts.MetaForMode != nil && opts.R != nil {
		maps.Copy(data, basePageData(opts.R, opts.MetaForMode(mode)))
	}

	return data, mode
}

// resolveFormMode coerces assorted Mode representations to a FormMode value.
func resolveFormMode(raw any, fallback FormMode) FormMode {
	switch v := raw.(type) {
	case FormMode:
		if v != "" {
			return v
		}
	case string:
		candidate := FormMode(strings.TrimSpace(v))
		if candidate != "" {
			return candidate
		}
	}
	return fallback
}
