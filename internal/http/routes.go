package httpx

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blogdeck/blogdeck/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions *service.SessionService
	Auth     *service.AuthService
	Posts    *service.PostService
	Accounts *service.AccountService
	Logger   *slog.Logger
}

// NewRouter creates and configures the HTTP handler tree: routes, the
// session middleware, logging and panic recovery.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templateFS, err := TemplateFS()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	ui := &UIHandlers{
		T:          renderer,
		AuthSvc:    services.Auth,
		PostSvc:    services.Posts,
		AccountSvc: services.Accounts,
		Sessions:   services.Sessions,
		Logger:     logger,
	}

	mux := http.NewServeMux()
	registerRoutes(mux, ui)

	if staticFS, fsErr := StaticFS(); fsErr == nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
	}

	handler := WithSession(services.Sessions)(mux)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

func registerRoutes(mux *http.ServeMux, ui *UIHandlers) {
	requireSession := RequireSession()
	anonymousOnly := RedirectIfAuthenticated()

	mux.Handle("GET /{$}", http.HandlerFunc(ui.Home))
	mux.Handle("/", http.HandlerFunc(ui.NotFound))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Anonymous-only pages: signed-in viewers bounce to the dashboard.
	mux.Handle("GET /login", anonymousOnly(http.HandlerFunc(ui.LoginPage)))
	mux.Handle("POST /login", anonymousOnly(http.HandlerFunc(ui.LoginSubmit)))
	mux.Handle("GET /sign-up", anonymousOnly(http.HandlerFunc(ui.SignUpPage)))
	mux.Handle("POST /sign-up", anonymousOnly(http.HandlerFunc(ui.SignUpSubmit)))
	mux.Handle("POST /logout", http.HandlerFunc(ui.Logout))

	// Session-gated pages.
	mux.Handle("GET /dashboard", requireSession(http.HandlerFunc(ui.Dashboard)))
	mux.Handle("GET /posts/new", requireSession(http.HandlerFunc(ui.PostCreatePage)))
	mux.Handle("POST /posts", requireSession(http.HandlerFunc(ui.PostCreateSubmit)))
	mux.Handle("GET /posts/{id}", requireSession(http.HandlerFunc(ui.PostDetail)))
	mux.Handle("GET /posts/{id}/edit", requireSession(http.HandlerFunc(ui.PostEditPage)))
	mux.Handle("POST /posts/{id}", requireSession(http.HandlerFunc(ui.PostEditSubmit)))
	mux.Handle("POST /posts/{id}/delete", requireSession(http.HandlerFunc(ui.PostDelete)))
	mux.Handle("POST /topics/input", requireSession(http.HandlerFunc(ui.TopicInput)))
	mux.Handle("POST /topics/remove", requireSession(http.HandlerFunc(ui.TopicRemove)))
	mux.Handle("GET /account", requireSession(http.HandlerFunc(ui.AccountPage)))
	mux.Handle("POST /account", requireSession(http.HandlerFunc(ui.AccountUpdateSubmit)))
	mux.Handle("POST /account/password", requireSession(http.HandlerFunc(ui.PasswordChangeSubmit)))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
