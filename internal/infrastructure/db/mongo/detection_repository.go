package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

const detectionCollection = "detections"

// DetectionRepository implements ports.DetectionRepository using MongoDB.
type DetectionRepository struct {
	coll *mongo.Collection
}

// NewDetectionRepository creates a new DetectionRepository.
func NewDetectionRepository(db *mongo.Database) ports.DetectionRepository {
	return &DetectionRepository{coll: db.Collection(detectionCollection)}
}

// Insert persists a detection record.
func (r *DetectionRepository) Insert(ctx context.Context, d *domain.Detection) error {
	doc := bson.M{
		"_id":        d.ID,
		"user_id":    d.UserID,
		"kind":       string(d.Kind),
		"input":      d.Input,
		"verdict":    string(d.Verdict),
		"confidence": d.Confidence,
		"created_at": d.CreatedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert detection: %w", err)
	}
	return nil
}

type mongoDetection struct {
	ID         string  `bson:"_id"`
	UserID     string  `bson:"user_id"`
	Kind       string  `bson:"kind"`
	Input      string  `bson:"input"`
	Verdict    string  `bson:"verdict"`
	Confidence float64 `bson:"confidence"`
	CreatedAt  time.Time `bson:"created_at"`
}

// ListByUser returns the user's detections, newest first.
func (r *DetectionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Detection, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list detections: %w", err)
	}
	defer cursor.Close(ctx)

	var detections []*domain.Detection
	for cursor.Next(ctx) {
		var md mongoDetection
		if err := cursor.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode detection: %w", err)
		}
		detections = append(detections, &domain.Detection{
			ID:         md.ID,
			UserID:     md.UserID,
			Kind:       domain.DetectionKind(md.Kind),
			Input:      md.Input,
			Verdict:    domain.Verdict(md.Verdict),
			Confidence: md.Confidence,
			CreatedAt:  md.CreatedAt.UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate detections: %w", err)
	}
	return detections, nil
}
