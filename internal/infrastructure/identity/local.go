package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

// Local adapts the built-in identity provider to ports.IdentityClient, so
// a deployment without a remote identity boundary resolves profiles
// in-process through the same narrow interface.
type Local struct {
	auth ports.AuthService
}

func NewLocal(auth ports.AuthService) *Local {
	return &Local{auth: auth}
}

// FetchProfile keeps the gate's error classification: a definitive
// rejection stays domain.ErrInvalidSession, anything else (storage
// failure, timeouts) is transient.
func (l *Local) FetchProfile(ctx context.Context, token string) (*domain.Profile, error) {
	profile, err := l.auth.Profile(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSession) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
	}
	return profile, nil
}
