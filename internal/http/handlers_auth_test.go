package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/apiclient"
	"github.com/blogdeck/blogdeck/internal/domain/model"
)

func formRequest(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestLoginSubmit_Success(t *testing.T) {
	auth := &fakeAuthService{token: "tok-123"}
	h, _ := newTestHandlers(t, auth, &fakePostsService{}, &fakeAccountService{})

	r := formRequest("/login", url.Values{
		"email":    {"pat@example.com"},
		"password": {"hunter2hunter2"},
	})
	w := doRequest(h.LoginSubmit, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, "pat@example.com", auth.gotCredentials.Email)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookieName, cookies[0].Name)
	assert.Equal(t, "tok-123", cookies[0].Value)
}

func TestLoginSubmit_SuccessOverHTMX(t *testing.T) {
	auth := &fakeAuthService{token: "tok-123"}
	h, _ := newTestHandlers(t, auth, &fakePostsService{}, &fakeAccountService{})

	r := formRequest("/login", url.Values{
		"email":    {"pat@example.com"},
		"password": {"hunter2hunter2"},
	})
	r.Header.Set("Hx-Request", "true")
	w := doRequest(h.LoginSubmit, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Hx-Redirect"))
}

func TestLoginSubmit_LocalValidationFailure(t *testing.T) {
	auth := &fakeAuthService{token: "never"}
	h, _ := newTestHandlers(t, auth, &fakePostsService{}, &fakeAccountService{})

	r := formRequest("/login", url.Values{
		"email":    {"not-an-email"},
		"password": {"short"},
	})
	w := doRequest(h.LoginSubmit, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Enter a valid email address.")
	assert.Contains(t, body, "Password must be between 6 and 80 characters.")
	// Nothing reached the platform.
	assert.Empty(t, auth.gotCredentials.Email)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginSubmit_PlatformRejection(t *testing.T) {
	auth := &fakeAuthService{
		loginErr: &apiclient.StatusError{StatusCode: http.StatusUnauthorized},
	}
	h, _ := newTestHandlers(t, auth, &fakePostsService{}, &fakeAccountService{})

	r := formRequest("/login", url.Values{
		"email":    {"pat@example.com"},
		"password": {"wrongpassword"},
	})
	w := doRequest(h.LoginSubmit, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password.")
	// The form keeps the typed email.
	assert.Contains(t, w.Body.String(), "pat@example.com")
}

func TestSignUpSubmit_Success(t *testing.T) {
	auth := &fakeAuthService{token: "tok-456"}
	h, _ := newTestHandlers(t, auth, &fakePostsService{}, &fakeAccountService{})

	r := formRequest("/sign-up", url.Values{
		"displayName": {"Pat Writer"},
		"email":       {"pat@example.com"},
		"password":    {"hunter2hunter2"},
	})
	w := doRequest(h.SignUpSubmit, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, "Pat Writer", auth.gotRegistration.DisplayName)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "tok-456", cookies[0].Value)
}

func TestSignUpSubmit_PlatformFieldErrors(t *testing.T) {
	auth := &fakeAuthService{
		registerErr: &apiclient.ValidationError{Errors: []model.FieldError{
			{Msg: "Email already registered.", Path: "email"},
		}},
	}
	h, _ := newTestHandlers(t, auth, &fakePostsService{}, &fakeAccountService{})

	r := formRequest("/sign-up", url.Values{
		"displayName": {"Pat Writer"},
		"email":       {"pat@example.com"},
		"password":    {"hunter2hunter2"},
	})
	w := doRequest(h.SignUpSubmit, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered.")
}

func TestSignUpSubmit_UnknownPlatformFieldCollapsesToGeneral(t *testing.T) {
	auth := &fakeAuthService{
		registerErr: &apiclient.ValidationError{Errors: []model.FieldError{
			{Msg: "nope", Path: "internalFlag"},
		}},
	}
	h, _ := newTestHandlers(t, auth, &fakePostsService{}, &fakeAccountService{})

	r := formRequest("/sign-up", url.Values{
		"displayName": {"Pat Writer"},
		"email":       {"pat@example.com"},
		"password":    {"hunter2hunter2"},
	})
	w := doRequest(h.SignUpSubmit, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "The submission was rejected. Please review and try again.")
}

func TestLogout(t *testing.T) {
	h, sessions := newTestHandlers(t, &fakeAuthService{}, &fakePostsService{}, &fakeAccountService{})

	r := withViewer(httptest.NewRequest(http.MethodPost, "/logout", nil), testIdentity(), "tok-123")
	w := doRequest(h.Logout, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, []string{"tok-123"}, sessions.invalidated)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLoginPage_Renders(t *testing.T) {
	h, _ := newTestHandlers(t, &fakeAuthService{}, &fakePostsService{}, &fakeAccountService{})

	w := doRequest(h.LoginPage, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Log In")
	assert.Contains(t, w.Body.String(), `hx-disabled-elt="find button[type='submit']"`)
}
