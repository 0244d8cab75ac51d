package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veriscan/veriscan-api/internal/api/metrics"
)

// EdgeGate is the cheap first-line filter on the protected route group.
// It checks token presence only and never produces protected bytes for a
// caller without one.
//
// Known gap: an expired or revoked token still passes this layer. Real
// authority rests with the profile resolver behind it.
func EdgeGate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Token(c) == "" {
				metrics.GateDecisionsTotal.WithLabelValues("edge", "no_session").Inc()
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			metrics.GateDecisionsTotal.WithLabelValues("edge", "pass").Inc()
			return next(c)
		}
	}
}
