package http

import (
	"net/http"
	"time"
)

// sessionCookieName is the cookie that carries the session token.
const sessionCookieName = "token"

type cookieSettings struct {
	maxAge time.Duration
	secure bool
}

// setSessionCookie attaches the signed token to the response.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie tells the client to drop the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionTokenFromCookie returns the token stored in the session cookie,
// or "" if the request carries none.
func sessionTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
