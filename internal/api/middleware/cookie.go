package middleware

import "net/http"

// CookieName is the cookie carrying the bearer token.
const CookieName = "token"

// NewTokenCookie builds the auth cookie set at login. HttpOnly keeps it away
// from scripts; SameSite=Lax matches the page-redirect flows; Secure is
// environment-conditional and must be true outside local development.
func NewTokenCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedTokenCookie builds an expired auth cookie, instructing the browser
// to drop whatever token it held.
func ClearedTokenCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
