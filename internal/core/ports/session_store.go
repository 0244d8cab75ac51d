package ports

import (
	"context"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// SessionStore persists the server-side record backing each issued token.
// Revoking the record is how logout and invalid-session recovery destroy
// a token the client may still hold.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, sessionID string) (*domain.Session, error)
	Revoke(ctx context.Context, sessionID string) error
}
