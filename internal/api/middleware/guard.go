package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veriscan/veriscan-api/internal/api/metrics"
	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// DenialResponse is the in-place denial view rendered when a resolved
// role is missing from a route's allow-list. Fallback names a guard-free
// destination, never a redirect — an authorization failure must not loop.
type DenialResponse struct {
	Error    string `json:"error"`
	Fallback string `json:"fallback"`
}

// RequireRoles is the per-route guard. It reads the one resolved profile
// published by SessionContext — never an independently sourced copy — and
// renders the handler only when the role is in the allow-list.
//
// An empty allow-list is invalid configuration and panics at wiring time;
// it is never interpreted as allow-all or deny-all. fallback defaults to
// FallbackPath when empty.
func RequireRoles(fallback string, roles ...domain.Role) echo.MiddlewareFunc {
	if len(roles) == 0 {
		panic("middleware: route guard requires a non-empty role allow-list")
	}
	if fallback == "" {
		fallback = FallbackPath
	}
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		if !r.Valid() {
			panic("middleware: route guard allow-list contains unknown role " + string(r))
		}
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile := Profile(c)
			if profile == nil {
				// Resolution has not settled for this request; the guard
				// never renders children on a partially known role.
				metrics.GateDecisionsTotal.WithLabelValues("guard", "unresolved").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "session not resolved")
			}

			if _, ok := allowed[profile.Role]; !ok {
				metrics.GateDecisionsTotal.WithLabelValues("guard", "denied").Inc()
				return c.JSON(http.StatusForbidden, DenialResponse{
					Error:    "your account does not have access to this page",
					Fallback: fallback,
				})
			}

			metrics.GateDecisionsTotal.WithLabelValues("guard", "pass").Inc()
			return next(c)
		}
	}
}
