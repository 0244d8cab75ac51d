package ports

import (
	"context"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

// ClassifyInput is one sample submitted to the external classifier.
type ClassifyInput struct {
	Kind    domain.DetectionKind
	Content string
}

// ClassifyResult is the classifier's answer for a single sample.
type ClassifyResult struct {
	Verdict    domain.Verdict
	Confidence float64
}

// Classifier is the narrow interface to the external AI-detection API.
type Classifier interface {
	Classify(ctx context.Context, in ClassifyInput) (*ClassifyResult, error)
}
