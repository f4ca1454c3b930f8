package recordsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nepwork/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrActivityNotFound is returned when no activity matches the lookup.
var ErrActivityNotFound = errors.New("activity not found")

func (r *mongoActivityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new activity and returns its ID.
func (r *mongoActivityRepo) Create(ctx context.Context, activity models.Activity) (string, error) {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, activity); err != nil {
		return "", fmt.Errorf("failed to insert activity: %w", err)
	}
	return activity.ID, nil
}

// GetByID returns an activity by its ID.
func (r *mongoActivityRepo) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	var activity models.Activity
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&activity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// Recent fetches the newest activities recorded for an identity.
func (r *mongoActivityRepo) Recent(ctx context.Context, email string, limit int) ([]models.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// DeleteByID removes an activity by ID.
func (r *mongoActivityRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrActivityNotFound
	}
	return nil
}
