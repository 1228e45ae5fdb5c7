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

// ActivityRepository defines the interface for activity data operations
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	GetAll(ctx context.Context, skip, limit int64) ([]models.Activity, error)
	Update(ctx context.Context, id string, activity *models.Activity) error
	Delete(ctx context.Context, id string) error
}

// MongoActivityRepository implements ActivityRepository for MongoDB
type MongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new MongoActivityRepository
func NewMongoActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{collection: db.Collection("activities")}
}

// Create inserts a new activity and assigns its identifier and timestamps
func (r *MongoActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	activity.ID = primitive.NewObjectID()
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, activity)
	return err
}

// GetByID retrieves an activity by ID
func (r *MongoActivityRepository) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format: %w", err)
	}

	var activity models.Activity
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&activity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// GetAll retrieves activities with pagination, newest first
func (r *MongoActivityRepository) GetAll(ctx context.Context, skip, limit int64) ([]models.Activity, error) {
	var activities []models.Activity
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Update overwrites the mutable fields of an existing activity
func (r *MongoActivityRepository) Update(ctx context.Context, id string, activity *models.Activity) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid activity ID format: %w", err)
	}

	activity.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":             activity.Title,
			"description":       activity.Description,
			"activityType":      activity.ActivityType,
			"date":              activity.Date,
			"chiefGuest":        activity.ChiefGuest,
			"venue":             activity.Venue,
			"programs":          activity.Programs,
			"studentsPresent":   activity.StudentsPresent,
			"volunteersPresent": activity.VolunteersPresent,
			"videos":            activity.Videos,
			"coverImageURL":     activity.CoverImageURL,
			"photos":            activity.Photos,
			"updatedAt":         activity.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an activity by ID. Hard delete: referenced media and
// Program links are not cleaned up.
func (r *MongoActivityRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid activity ID format: %w", err)
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
