package httpx

import (
	"net/http"
	"time"
)

// TokenCookieName is the cookie that carries the viewer's credential
// token between requests.
const TokenCookieName = "token"

// tokenCookieMaxAge matches the platform's seven-day token lifetime.
const tokenCookieMaxAge = 7 * 24 * time.Hour

// ReadToken extracts the credential token from the request cookie.
// Returns the empty string when the cookie is absent.
func ReadToken(r *http.Request) string {
	c, err := r.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetTokenCookie stores the credential token in the browser for seven
// days. Strict same-site keeps the token out of cross-origin requests.
func SetTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenCookieMaxAge.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearTokenCookie removes the credential token cookie.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
