package tripRepo

import (
	"context"
	"fmt"
	"time"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TripRepository defines the interface for trip data access.
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id string) (*models.Trip, error)
	GetByUser(ctx context.Context, userID string) ([]models.Trip, error)
}

// MongoTripRepo implements TripRepository using MongoDB.
type MongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo creates a new TripRepository backed by MongoDB.
func NewMongoTripRepo() TripRepository {
	repo := &MongoTripRepo{coll: database.Collection("trips")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create trip indexes: %v\n", err)
	}
	return repo
}

func (r *MongoTripRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new trip document.
func (r *MongoTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	trip.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetByID fetches one trip by its ID.
func (r *MongoTripRepo) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trip %s: %w", id, err)
	}
	return &trip, nil
}

// GetByUser lists the caller's trips, newest first.
func (r *MongoTripRepo) GetByUser(ctx context.Context, userID string) ([]models.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}
