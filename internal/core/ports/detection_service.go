package ports

import (
	"context"
	"time"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// DetectionInput is the DTO passed from the transport layer to DetectionService.
type DetectionInput struct {
	UserID  string
	Kind    domain.DetectionKind
	Content string
}

// DetectionRecordInput is the DTO enqueued for asynchronous persistence of
// a completed detection.
type DetectionRecordInput struct {
	UserID     string
	Kind       domain.DetectionKind
	Input      string
	Verdict    domain.Verdict
	Confidence float64
	Timestamp  time.Time
}

// DetectionService runs classifications and records their outcomes.
type DetectionService interface {
	// Detect submits one sample to the classifier and enqueues the result
	// for recording. The classification verdict is returned synchronously.
	Detect(ctx context.Context, in DetectionInput) (*ClassifyResult, error)
	// Record persists a completed detection and bumps the user's counter.
	// Invoked by the dispatcher workers.
	Record(ctx context.Context, in DetectionRecordInput) error
	// ListRecent returns the user's most recent detections, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Detection, error)
}
