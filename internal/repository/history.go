package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecommendationRecord is a compact audit record of one recommendation run.
// The full plan is not stored; the record carries enough to analyze traffic
// and outcomes over time.
type RecommendationRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID   string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	ItemCount   int                `bson:"item_count" json:"item_count"`
	UnitCount   int                `bson:"unit_count" json:"unit_count"`
	Status      string             `bson:"status" json:"status"`
	ContainerID string             `bson:"container_id,omitempty" json:"container_id,omitempty"`
	Score       float64            `bson:"score" json:"score"`
	TimedOut    bool               `bson:"timed_out" json:"timed_out"`
	DurationMs  int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// HistoryQueryOptions filters history reads.
type HistoryQueryOptions struct {
	RequestID string
	Status    string
	Since     time.Time
	Limit     int
}

// HistoryRepository provides recommendation history persistence.
type HistoryRepository struct {
	collection *mongo.Collection
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db *MongoDB) *HistoryRepository {
	return &HistoryRepository{
		collection: db.History,
	}
}

// Create stores one recommendation record.
func (r *HistoryRepository) Create(ctx context.Context, record *RecommendationRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// Query returns history records matching the options, newest first.
func (r *HistoryRepository) Query(ctx context.Context, opts HistoryQueryOptions) ([]*RecommendationRecord, error) {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if !opts.Since.IsZero() {
		filter["created_at"] = bson.M{"$gte": opts.Since}
	}

	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []*RecommendationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of history records matching the options.
func (r *HistoryRepository) Count(ctx context.Context, opts HistoryQueryOptions) (int64, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if !opts.Since.IsZero() {
		filter["created_at"] = bson.M{"$gte": opts.Since}
	}
	return r.collection.CountDocuments(ctx, filter)
}
