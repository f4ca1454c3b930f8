package recordsRepo

import (
	"context"
	"log"

	"nepwork/database"
	"nepwork/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ActivityRepository stores the dashboard's recent-activity trail.
type ActivityRepository interface {
	Create(ctx context.Context, activity models.Activity) (string, error)
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	// Recent returns up to limit activities for email, newest first.
	Recent(ctx context.Context, email string, limit int) ([]models.Activity, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo returns a new ActivityRepository instance using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	repo := &mongoActivityRepo{
		coll: database.Database().Collection("activity"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("failed to create activity indexes: %v", err)
	}
	return repo
}
