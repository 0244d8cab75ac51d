package ports

import (
	"context"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// UserRepository defines persistence for identity-boundary user records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
	// IncrementDetections atomically bumps the user's detection counter.
	IncrementDetections(ctx context.Context, id string) error
}
