package ports

import (
	"context"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// AuthService is the identity provider surface: credential verification,
// token issuance and revocation, and the token-to-profile exchange backing
// GET /auth/profile.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	// Login verifies credentials and returns a freshly issued session token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the server-side session record for the token. The
	// caller clears its client-held copy only after revocation succeeds.
	Logout(ctx context.Context, token string) error
	// Profile exchanges a token for the authoritative user profile.
	Profile(ctx context.Context, token string) (*domain.Profile, error)
}
