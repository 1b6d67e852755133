package httpx

import (
	"encoding/base64"
	"net/http"
)

// FlashCookieName carries a one-shot notification across the redirect
// that follows a successful submission.
const FlashCookieName = "flash"

// SetFlash queues a notification for the next page render. The value is
// base64-encoded so arbitrary messages survive cookie value rules.
func SetFlash(w http.ResponseWriter, message string) {
	if message == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		MaxAge:   60,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// PopFlash returns the queued notification and clears the cookie, so
// each message is shown exactly once.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(FlashCookieName)
	if err != nil || c.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	message, decodeErr := base64.URLEncoding.DecodeString(c.Value)
	if decodeErr != nil {
		return ""
	}
	return string(message)
}
