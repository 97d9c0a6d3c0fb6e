package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// SetSessionCookies attaches both session tokens as http-only,
// same-site-strict cookies. Tokens are never exposed in response bodies.
func SetSessionCookies(c *gin.Context, accessToken, refreshToken string, secure bool) {
	SetAccessCookie(c, accessToken, secure)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// SetAccessCookie attaches only the access token cookie (token refresh path).
func SetAccessCookie(c *gin.Context, accessToken string, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(AccessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookies expires both session cookies. Stateless logout: there
// is no server-side revocation list in this design.
func ClearSessionCookies(c *gin.Context, secure bool) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
