package httpx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

func TestWithSession_NoCookieStaysAnonymous(t *testing.T) {
	resolver := &stubResolver{identity: testIdentity()}

	var sawIdentity bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		sawIdentity = !IsAnonymous(r.Context())
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	WithSession(resolver)(next).ServeHTTP(w, r)

	assert.False(t, sawIdentity)
	assert.Empty(t, resolver.lastToken, "resolver must not be called without a cookie")
}

func TestWithSession_ResolvesCookieToken(t *testing.T) {
	resolver := &stubResolver{identity: testIdentity()}

	var gotIdentity *model.Identity
	var gotToken string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotIdentity, _ = GetIdentityFromContext(r.Context())
		gotToken = GetTokenFromContext(r.Context())
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "tok-123"})
	WithSession(resolver)(next).ServeHTTP(w, r)

	assert.Equal(t, "tok-123", resolver.lastToken)
	assert.Equal(t, "tok-123", gotToken)
	assert.NotNil(t, gotIdentity)
	assert.Equal(t, "Pat Writer", gotIdentity.DisplayName)
}

func TestWithSession_DeclinedTokenStaysAnonymous(t *testing.T) {
	resolver := &stubResolver{identity: nil}

	var sawIdentity bool
	var gotToken string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		sawIdentity = !IsAnonymous(r.Context())
		gotToken = GetTokenFromContext(r.Context())
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "stale-token"})
	WithSession(resolver)(next).ServeHTTP(w, r)

	assert.False(t, sawIdentity)
	// The raw token still rides along for handlers that proxy upstream.
	assert.Equal(t, "stale-token", gotToken)
}

func TestRequireSession_AnonymousBrowserRedirects(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	RequireSession()(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSession_AnonymousHTMXGetsHxRedirect(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.Header.Set("Hx-Request", "true")
	RequireSession()(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Hx-Redirect"))
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRequireSession_AuthenticatedPassesThrough(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r := withViewer(httptest.NewRequest(http.MethodGet, "/dashboard", nil), testIdentity(), "tok")
	RequireSession()(next).ServeHTTP(w, r)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRedirectIfAuthenticated_SendsViewerToDashboard(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) { called = true })

	w := httptest.NewRecorder()
	r := withViewer(httptest.NewRequest(http.MethodGet, "/login", nil), testIdentity(), "tok")
	RedirectIfAuthenticated()(next).ServeHTTP(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRedirectIfAuthenticated_AnonymousPassesThrough(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	RedirectIfAuthenticated()(next).ServeHTTP(w, r)

	assert.True(t, called)
}

func TestRecover_PanicBecomes500(t *testing.T) {
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	Recover(slog.New(slog.DiscardHandler))(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogging_PreservesHandlerStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	Logging(slog.New(slog.DiscardHandler))(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
}
