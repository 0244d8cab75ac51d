package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-api/internal/api/metrics"
	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

// TokenRevoker destroys the server-side session record backing a token.
type TokenRevoker interface {
	Logout(ctx context.Context, token string) error
}

// SessionContext resolves the session token into a profile and routes the
// request into exactly one experience tree, or forces invalid-session
// recovery. No handler runs until the resolution has settled, so nothing
// downstream ever sees a partially known role.
//
// Outcomes:
//   - valid role: the one shared profile is published into the request
//     context for the role router's tree and every route guard to read
//   - unknown role or definitive invalid-session verdict: the token is
//     destroyed (server record revoked, cache dropped, cookie cleared)
//     before the single redirect to the login route is issued, so the
//     edge gate agrees with the cleared state on the next navigation
//   - identity boundary unreachable: the request fails with an explicit
//     retryable error and the token is preserved for a later attempt
func SessionContext(resolver ports.ProfileResolver, revoker TokenRevoker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := Token(c)

			start := time.Now()
			profile, err := resolver.Resolve(c.Request().Context(), token)
			metrics.ProfileResolutionDuration.Observe(time.Since(start).Seconds())

			switch {
			case err == nil:
				metrics.ProfileResolutionsTotal.WithLabelValues("resolved").Inc()
				metrics.GateDecisionsTotal.WithLabelValues("session", "pass").Inc()
				c.Set(profileKey, profile)
				return next(c)

			case errors.Is(err, domain.ErrUnknownRole):
				metrics.ProfileResolutionsTotal.WithLabelValues("unknown_role").Inc()
				metrics.GateDecisionsTotal.WithLabelValues("session", "unknown_role").Inc()
				log.Warn().Err(err).Msg("profile resolved with unrecognized role, forcing logout")
				return invalidate(c, resolver, revoker, token, log)

			case errors.Is(err, domain.ErrInvalidSession), errors.Is(err, domain.ErrMalformedProfile):
				metrics.ProfileResolutionsTotal.WithLabelValues("invalid").Inc()
				metrics.GateDecisionsTotal.WithLabelValues("session", "invalid_session").Inc()
				log.Info().Err(err).Msg("session token rejected by identity boundary")
				return invalidate(c, resolver, revoker, token, log)

			default:
				// Transient: network failure, identity 5xx, or the
				// resolution timing out. The token survives for retry.
				metrics.ProfileResolutionsTotal.WithLabelValues("unavailable").Inc()
				metrics.GateDecisionsTotal.WithLabelValues("session", "identity_unavailable").Inc()
				log.Error().Err(err).Msg("profile resolution unavailable")
				c.Response().Header().Set("Retry-After", "5")
				return domain.ErrIdentityUnavailable
			}
		}
	}
}

// invalidate is the terminal transition for a navigation: destroy the
// token everywhere, then issue the single redirect to login. Revocation
// strictly precedes the redirect so a follow-up edge gate check can never
// race a stale token.
func invalidate(c echo.Context, resolver ports.ProfileResolver, revoker TokenRevoker, token string, log zerolog.Logger) error {
	if err := revoker.Logout(c.Request().Context(), token); err != nil {
		// The cookie is cleared regardless; the record expires on its TTL.
		log.Warn().Err(err).Msg("session revocation failed")
	}
	resolver.Invalidate(token)
	ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, LoginPath)
}
