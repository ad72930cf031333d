package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// ContainerConfig is a versioned container catalog document. Each catalog
// replacement deactivates the previous version instead of overwriting it,
// preserving the change history.
type ContainerConfig struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Containers []model.Container      `bson:"containers" json:"containers"`
	Active     bool                   `bson:"active" json:"active"`
	Version    int                    `bson:"version" json:"version"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy  string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata   map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// ContainersRepository provides container catalog persistence.
type ContainersRepository struct {
	collection *mongo.Collection
}

// NewContainersRepository creates a new container catalog repository.
func NewContainersRepository(db *MongoDB) *ContainersRepository {
	return &ContainersRepository{
		collection: db.Containers,
	}
}

// GetActive returns the active container catalog, or nil when none exists.
func (r *ContainersRepository) GetActive(ctx context.Context) (*ContainerConfig, error) {
	var config ContainerConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Replace deactivates the current catalog and inserts the given containers
// as the new active version.
func (r *ContainersRepository) Replace(ctx context.Context, containers []model.Container, createdBy string) (*ContainerConfig, error) {
	current, err := r.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	version := 1
	if current != nil {
		version = current.Version + 1
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := ContainerConfig{
		ID:         primitive.NewObjectID(),
		Containers: containers,
		Active:     true,
		Version:    version,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		CreatedBy:  createdBy,
		Metadata:   make(map[string]interface{}),
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns catalog versions, newest first.
func (r *ContainersRepository) List(ctx context.Context, limit int) ([]ContainerConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []ContainerConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
