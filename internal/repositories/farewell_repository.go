package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/sagarp07/college-portal/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FarewellRepository defines the interface for farewell data operations.
// The store itself enforces the one-farewell-per-date invariant; a
// pre-check in application code would race under concurrent creates.
type FarewellRepository interface {
	Create(ctx context.Context, farewell *models.Farewell) error
	GetByID(ctx context.Context, id string) (*models.Farewell, error)
	GetAll(ctx context.Context, skip, limit int64) ([]models.Farewell, error)
	Update(ctx context.Context, id string, farewell *models.Farewell) error
	Delete(ctx context.Context, id string) error
}

// MongoFarewellRepository implements FarewellRepository for MongoDB
type MongoFarewellRepository struct {
	collection *mongo.Collection
}

// NewMongoFarewellRepository creates a new MongoFarewellRepository
func NewMongoFarewellRepository(db *mongo.Database) *MongoFarewellRepository {
	return &MongoFarewellRepository{collection: db.Collection("farewells")}
}

// EnsureIndexes creates the unique index on date. Called once at startup.
func (r *MongoFarewellRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a new farewell record. A duplicate date is rejected
// atomically by the unique index.
func (r *MongoFarewellRepository) Create(ctx context.Context, farewell *models.Farewell) error {
	farewell.ID = primitive.NewObjectID()
	farewell.CreatedAt = time.Now()
	farewell.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, farewell)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateDate
	}
	return err
}

// GetByID retrieves a farewell record by ID
func (r *MongoFarewellRepository) GetByID(ctx context.Context, id string) (*models.Farewell, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid farewell ID format: %w", err)
	}

	var farewell models.Farewell
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&farewell)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &farewell, nil
}

// GetAll retrieves farewell records with pagination, newest first
func (r *MongoFarewellRepository) GetAll(ctx context.Context, skip, limit int64) ([]models.Farewell, error) {
	var farewells []models.Farewell
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &farewells); err != nil {
		return nil, err
	}
	return farewells, nil
}

// Update overwrites the mutable fields of an existing farewell record.
// Moving a farewell onto an occupied date hits the same unique index.
func (r *MongoFarewellRepository) Update(ctx context.Context, id string, farewell *models.Farewell) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid farewell ID format: %w", err)
	}

	farewell.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":                    farewell.Title,
			"description":              farewell.Description,
			"date":                     farewell.Date,
			"venue":                    farewell.Venue,
			"finalYearStudentsPresent": farewell.FinalYearStudentsPresent,
			"juniorPresent":            farewell.JuniorPresent,
			"coverImageURL":            farewell.CoverImageURL,
			"photos":                   farewell.Photos,
			"updatedAt":                farewell.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateDate
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a farewell record by ID
func (r *MongoFarewellRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid farewell ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
