package ports

import (
	"context"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// DetectionRepository handles persistence of detection records.
type DetectionRepository interface {
	Insert(ctx context.Context, d *domain.Detection) error
	// ListByUser returns the most recent detections for a user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Detection, error)
}
