package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veriscan/veriscan-api/internal/api/middleware"
	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// currentProfile returns the one resolved profile published by the
// session middleware. Handlers never re-derive identity from storage or
// headers; absence here means the gate did not run, which is a wiring
// error surfaced as 401.
func currentProfile(c echo.Context) (*domain.Profile, error) {
	profile := middleware.Profile(c)
	if profile == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session not resolved")
	}
	return profile, nil
}
