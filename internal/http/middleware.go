package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

// SessionResolver maps a credential token to a viewer identity.
// Resolution failures degrade to a nil identity rather than an error.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) *model.Identity
}

// Logging returns a middleware that logs HTTP requests and responses.
// Each request gets a generated id so related log lines correlate.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("request_id", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a middleware that resolves the token cookie to an
// identity and stores both on the request context. Resolution always
// completes before downstream handlers run, so gate decisions never see
// a half-resolved session. Requests without a cookie, and requests whose
// token the platform declines, continue as anonymous.
func WithSession(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ReadToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := SetTokenInContext(r.Context(), token)
			if identity := sessions.Resolve(ctx, token); identity != nil {
				ctx = SetIdentityInContext(ctx, identity)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession returns a middleware that gates authenticated pages.
// Anonymous viewers get exactly one redirect to the login page; htmx
// requests get an Hx-Redirect so the browser navigates instead of
// swapping in the login markup.
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsAnonymous(r.Context()) {
				redirectToLogin(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectIfAuthenticated returns the inverse gate for the login and
// sign-up pages: viewers who already hold a valid session are sent to
// the dashboard instead.
func RedirectIfAuthenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAnonymous(r.Context()) {
				redirectTo(w, r, "/dashboard")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectTo(w, r, "/login")
}

func redirectTo(w http.ResponseWriter, r *http.Request, url string) {
	if IsHTMX(r) {
		SetHXRedirect(w, url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
