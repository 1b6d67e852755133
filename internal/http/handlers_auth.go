package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blogdeck/blogdeck/internal/apiclient"
	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/http/validation"
)

const (
	minPasswordLength    = 6
	maxPasswordLength    = 80
	maxDisplayNameLength = 50
)

func loginPageMeta() PageMeta {
	return PageMeta{Title: "Blogdeck - Log In", PageTitle: "Log In", CurrentPage: PageLogin}
}

func signUpPageMeta() PageMeta {
	return PageMeta{Title: "Blogdeck - Sign Up", PageTitle: "Sign Up", CurrentPage: PageSignUp}
}

// LoginPage renders the login form.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, loginPageMeta()).Build()
	h.renderPage(w, r, data)
}

// LoginSubmit handles the login form post. On success the credential
// token is stored in the browser and the viewer lands on the dashboard.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	creds, fieldErrors := parseLoginForm(r)
	if len(fieldErrors) > 0 {
		h.renderLoginError(w, r, fieldErrors, errMsgFixBelow, creds)
		return
	}

	token, err := h.AuthSvc.Login(r.Context(), creds)
	if err != nil {
		fieldErrs, general := mapAuthError(err, "email", "password")
		if general == "" {
			general = "Invalid email or password."
		}
		h.renderLoginError(w, r, fieldErrs, general, creds)
		return
	}

	SetTokenCookie(w, token)
	redirectTo(w, r, "/dashboard")
}

// SignUpPage renders the sign-up form.
func (h *UIHandlers) SignUpPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, signUpPageMeta()).Build()
	h.renderPage(w, r, data)
}

// SignUpSubmit handles the registration form post. A successful
// registration logs the viewer straight in.
func (h *UIHandlers) SignUpSubmit(w http.ResponseWriter, r *http.Request) {
	reg, fieldErrors := parseSignUpForm(r)
	if len(fieldErrors) > 0 {
		h.renderSignUpError(w, r, fieldErrors, errMsgFixBelow, reg)
		return
	}

	token, err := h.AuthSvc.Register(r.Context(), reg)
	if err != nil {
		fieldErrs, general := mapAuthError(err, "displayName", "email", "password")
		if general == "" {
			general = "Unable to create the account. Please try again."
		}
		h.renderSignUpError(w, r, fieldErrs, general, reg)
		return
	}

	SetTokenCookie(w, token)
	redirectTo(w, r, "/dashboard")
}

// Logout drops the cached identity, clears the cookie, and returns the
// viewer to the login page.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := GetTokenFromContext(r.Context()); token != "" && h.Sessions != nil {
		h.Sessions.Invalidate(r.Context(), token)
	}
	ClearTokenCookie(w)
	redirectTo(w, r, "/login")
}

func parseLoginForm(r *http.Request) (model.Credentials, map[string]string) {
	_ = r.ParseForm()
	creds := model.Credentials{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	errs := validation.New().
		Validate("email", creds.Email, validation.Email("Email")).
		Validate("password", creds.Password,
			validation.RequiredRange("Password", minPasswordLength, maxPasswordLength)).
		Errors()

	return creds, errs
}

func parseSignUpForm(r *http.Request) (model.Registration, map[string]string) {
	_ = r.ParseForm()
	reg := model.Registration{
		DisplayName: strings.TrimSpace(r.FormValue("displayName")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Password:    r.FormValue("password"),
	}

	errs := validation.New().
		Validate("displayName", reg.DisplayName,
			validation.Required("Display name", maxDisplayNameLength)).
		Validate("email", reg.Email, validation.Email("Email")).
		Validate("password", reg.Password,
			validation.RequiredRange("Password", minPasswordLength, maxPasswordLength)).
		Errors()

	return reg, errs
}

// mapAuthError converts platform rejections into form feedback. Field
// errors win when the platform names fields the form renders; anything
// else stays a blank general error for the caller to fill in.
func mapAuthError(err error, knownFields ...string) (map[string]string, string) {
	var verr *apiclient.ValidationError
	if errors.As(err, &verr) {
		if fieldErrs := MapFieldErrors(verr.Errors, knownFields...); len(fieldErrs) > 0 {
			return fieldErrs, ""
		}
		return nil, "The submission was rejected. Please review and try again."
	}
	return nil, ""
}

func (h *UIHandlers) renderLoginError(
	w http.ResponseWriter,
	r *http.Request,
	fieldErrors map[string]string,
	general string,
	creds model.Credentials,
) {
	data := NewTemplateData(r, loginPageMeta()).
		WithFieldErrors(fieldErrors).
		WithError(general).
		With("FormEmail", creds.Email).
		Build()
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderPage(w, r, data)
}

func (h *UIHandlers) renderSignUpError(
	w http.ResponseWriter,
	r *http.Request,
	fieldErrors map[string]string,
	general string,
	reg model.Registration,
) {
	data := NewTemplateData(r, signUpPageMeta()).
		WithFieldErrors(fieldErrors).
		WithError(general).
		With("FormDisplayName", reg.DisplayName).
		With("FormEmail", reg.Email).
		Build()
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderPage(w, r, data)
}
