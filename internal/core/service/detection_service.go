package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

const defaultListLimit = 20

// Recorder abstracts the asynchronous pipeline that persists completed
// detections (the sharded dispatcher in production).
type Recorder interface {
	Enqueue(in ports.DetectionRecordInput)
}

type DetectionService struct {
	classifier ports.Classifier
	detections ports.DetectionRepository
	users      ports.UserRepository
	recorder   Recorder
	log        zerolog.Logger
}

// NewDetectionService returns a DetectionService implementation. recorder
// may be nil, in which case results are recorded synchronously.
func NewDetectionService(
	classifier ports.Classifier,
	detections ports.DetectionRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *DetectionService {
	return &DetectionService{
		classifier: classifier,
		detections: detections,
		users:      users,
		log:        log,
	}
}

// SetRecorder wires the asynchronous recorder. Separate from the
// constructor because the dispatcher needs the service as its processor.
func (s *DetectionService) SetRecorder(r Recorder) {
	s.recorder = r
}

// Detect submits one sample to the external classifier and hands the
// outcome to the recording pipeline. The verdict is returned to the
// caller synchronously; persistence is fire-and-forget.
func (s *DetectionService) Detect(ctx context.Context, in ports.DetectionInput) (*ports.ClassifyResult, error) {
	switch in.Kind {
	case domain.DetectionEmail, domain.DetectionURL, domain.DetectionFile:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDetectionKind, in.Kind)
	}
	if in.Content == "" {
		return nil, fmt.Errorf("%w: empty content", domain.ErrInvalidDetectionKind)
	}

	result, err := s.classifier.Classify(ctx, ports.ClassifyInput{Kind: in.Kind, Content: in.Content})
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	record := ports.DetectionRecordInput{
		UserID:     in.UserID,
		Kind:       in.Kind,
		Input:      in.Content,
		Verdict:    result.Verdict,
		Confidence: result.Confidence,
		Timestamp:  time.Now().UTC(),
	}
	if s.recorder != nil {
		s.recorder.Enqueue(record)
	} else if err := s.Record(ctx, record); err != nil {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("synchronous detection record failed")
	}

	return result, nil
}

// Record persists one completed detection and bumps the user's counter.
func (s *DetectionService) Record(ctx context.Context, in ports.DetectionRecordInput) error {
	detection := &domain.Detection{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		Kind:       in.Kind,
		Input:      in.Input,
		Verdict:    in.Verdict,
		Confidence: in.Confidence,
		CreatedAt:  in.Timestamp,
	}

	if err := s.detections.Insert(ctx, detection); err != nil {
		return fmt.Errorf("insert detection: %w", err)
	}

	if err := s.users.IncrementDetections(ctx, in.UserID); err != nil {
		return fmt.Errorf("increment detections: %w", err)
	}

	s.log.Info().
		Str("user_id", in.UserID).
		Str("kind", string(in.Kind)).
		Str("verdict", string(in.Verdict)).
		Msg("detection recorded")

	return nil
}

func (s *DetectionService) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Detection, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.detections.ListByUser(ctx, userID, limit)
}
