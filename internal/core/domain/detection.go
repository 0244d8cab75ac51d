package domain

import (
	"errors"
	"time"
)

// DetectionKind identifies which classifier surface produced a detection.
type DetectionKind string

const (
	DetectionEmail DetectionKind = "email"
	DetectionURL   DetectionKind = "url"
	DetectionFile  DetectionKind = "file"
)

var ErrInvalidDetectionKind = errors.New("invalid detection kind")

// Verdict is the classifier's judgement on a submitted sample.
type Verdict string

const (
	VerdictAIGenerated Verdict = "ai_generated"
	VerdictHuman       Verdict = "human"
	VerdictUncertain   Verdict = "uncertain"
)

// Detection records one classification performed on behalf of a user.
type Detection struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	Kind       DetectionKind `json:"kind"`
	Input      string        `json:"input"`
	Verdict    Verdict       `json:"verdict"`
	Confidence float64       `json:"confidence"`
	CreatedAt  time.Time     `json:"created_at"`
}
