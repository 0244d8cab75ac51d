package ports

import (
	"context"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// IdentityClient is the narrow interface to the identity boundary. It is
// the only component allowed to exchange a session token for a profile.
type IdentityClient interface {
	// FetchProfile performs one profile fetch with the token as bearer
	// credential. Errors are classified into the gate taxonomy:
	// domain.ErrInvalidSession for a definitive 401/403 verdict,
	// domain.ErrIdentityUnavailable for network failures and 5xx,
	// domain.ErrMalformedProfile for a 2xx with an unusable body.
	FetchProfile(ctx context.Context, token string) (*domain.Profile, error)
}

// ProfileResolver is the sole authority that turns a token into a usable
// profile. Implementations cache the resolved profile for the session
// lifetime and guarantee at most one in-flight fetch per token.
type ProfileResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Profile, error)
	// Invalidate drops any cached profile for the token. Called on logout
	// and on the role router's invalid-session transition.
	Invalidate(token string)
}
