package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

type stubClassifier struct {
	result *ports.ClassifyResult
	err    error
}

func (s *stubClassifier) Classify(_ context.Context, _ ports.ClassifyInput) (*ports.ClassifyResult, error) {
	return s.result, s.err
}

type stubDetectionRepo struct {
	mu       sync.Mutex
	inserted []*domain.Detection
}

func (r *stubDetectionRepo) Insert(_ context.Context, d *domain.Detection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, d)
	return nil
}

func (r *stubDetectionRepo) ListByUser(_ context.Context, userID string, limit int) ([]*domain.Detection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Detection
	for _, d := range r.inserted {
		if d.UserID == userID && len(out) < limit {
			out = append(out, d)
		}
	}
	return out, nil
}

type captureRecorder struct {
	records []ports.DetectionRecordInput
}

func (c *captureRecorder) Enqueue(in ports.DetectionRecordInput) {
	c.records = append(c.records, in)
}

func TestDetectionService_Detect_EnqueuesRecord(t *testing.T) {
	repo := &stubDetectionRepo{}
	users := newStubUserRepo()
	recorder := &captureRecorder{}
	svc := NewDetectionService(
		&stubClassifier{result: &ports.ClassifyResult{Verdict: domain.VerdictAIGenerated, Confidence: 0.93}},
		repo, users, zerolog.Nop(),
	)
	svc.SetRecorder(recorder)

	result, err := svc.Detect(context.Background(), ports.DetectionInput{
		UserID:  "u1",
		Kind:    domain.DetectionEmail,
		Content: "suspicious text",
	})
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if result.Verdict != domain.VerdictAIGenerated {
		t.Fatalf("unexpected verdict: %s", result.Verdict)
	}
	if len(recorder.records) != 1 {
		t.Fatalf("expected one enqueued record, got %d", len(recorder.records))
	}
	if recorder.records[0].UserID != "u1" || recorder.records[0].Kind != domain.DetectionEmail {
		t.Fatalf("unexpected record: %+v", recorder.records[0])
	}
}

func TestDetectionService_Detect_RejectsUnknownKind(t *testing.T) {
	svc := NewDetectionService(&stubClassifier{}, &stubDetectionRepo{}, newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Detect(context.Background(), ports.DetectionInput{UserID: "u1", Kind: "image", Content: "x"}); !errors.Is(err, domain.ErrInvalidDetectionKind) {
		t.Fatalf("expected ErrInvalidDetectionKind, got %v", err)
	}
	if _, err := svc.Detect(context.Background(), ports.DetectionInput{UserID: "u1", Kind: domain.DetectionURL}); !errors.Is(err, domain.ErrInvalidDetectionKind) {
		t.Fatalf("expected ErrInvalidDetectionKind for empty content, got %v", err)
	}
}

func TestDetectionService_Detect_ClassifierFailure(t *testing.T) {
	svc := NewDetectionService(
		&stubClassifier{err: errors.New("classifier down")},
		&stubDetectionRepo{}, newStubUserRepo(), zerolog.Nop(),
	)

	if _, err := svc.Detect(context.Background(), ports.DetectionInput{UserID: "u1", Kind: domain.DetectionURL, Content: "http://x"}); err == nil {
		t.Fatalf("expected classifier error to propagate")
	}
}

func TestDetectionService_Record_PersistsAndIncrements(t *testing.T) {
	repo := &stubDetectionRepo{}
	users := newStubUserRepo()
	created, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com", Role: domain.RoleIndividual})
	svc := NewDetectionService(&stubClassifier{}, repo, users, zerolog.Nop())

	err := svc.Record(context.Background(), ports.DetectionRecordInput{
		UserID:  created.ID,
		Kind:    domain.DetectionFile,
		Input:   "paper.pdf",
		Verdict: domain.VerdictHuman,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one detection inserted, got %d", len(repo.inserted))
	}
	if repo.inserted[0].ID == "" {
		t.Fatalf("expected generated detection id")
	}

	user, _ := users.FindByID(context.Background(), created.ID)
	if user.DetectionsCount != 1 {
		t.Fatalf("expected detections count 1, got %d", user.DetectionsCount)
	}
}
