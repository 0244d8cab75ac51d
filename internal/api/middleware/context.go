package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

const (
	// SessionCookie is the fixed storage key for the client-held token.
	SessionCookie = "vs_session"

	// LoginPath is where session failures are redirected. Exactly one hop:
	// every path that redirects here clears the token first, so the edge
	// gate can never bounce the caller back.
	LoginPath = "/login"

	// FallbackPath is the unified denial fallback. It is registered
	// without a route guard, so it can never itself deny and cause a cycle.
	FallbackPath = "/dashboard/overview"
)

const profileKey = "profile"

// Token extracts the session token from the bearer header or the session
// cookie. Presence only — no validation happens here.
func Token(c echo.Context) string {
	if h := c.Request().Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// Profile returns the resolved profile published by SessionContext, or
// nil when resolution has not run for this request.
func Profile(c echo.Context) *domain.Profile {
	p, _ := c.Get(profileKey).(*domain.Profile)
	return p
}

// SetSessionCookie stores the token client-side for browser navigations.
func SetSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie destroys the client-held token. Callers revoke the
// server-side session record first, so the cleared state is consistent
// by the time the response reaches the client.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
