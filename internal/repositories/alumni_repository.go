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

// AlumniRepository defines the interface for alumni data operations
type AlumniRepository interface {
	Create(ctx context.Context, alumni *models.Alumni) error
	GetByID(ctx context.Context, id string) (*models.Alumni, error)
	GetAll(ctx context.Context, skip, limit int64) ([]models.Alumni, error)
	Update(ctx context.Context, id string, alumni *models.Alumni) error
	Delete(ctx context.Context, id string) error
}

// MongoAlumniRepository implements AlumniRepository for MongoDB
type MongoAlumniRepository struct {
	collection *mongo.Collection
}

// NewMongoAlumniRepository creates a new MongoAlumniRepository
func NewMongoAlumniRepository(db *mongo.Database) *MongoAlumniRepository {
	return &MongoAlumniRepository{collection: db.Collection("alumni")}
}

// Create inserts a new alumni record
func (r *MongoAlumniRepository) Create(ctx context.Context, alumni *models.Alumni) error {
	alumni.ID = primitive.NewObjectID()
	alumni.CreatedAt = time.Now()
	alumni.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, alumni)
	return err
}

// GetByID retrieves an alumni record by ID
func (r *MongoAlumniRepository) GetByID(ctx context.Context, id string) (*models.Alumni, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid alumni ID format: %w", err)
	}

	var alumni models.Alumni
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&alumni)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &alumni, nil
}

// GetAll retrieves alumni records with pagination, newest first
func (r *MongoAlumniRepository) GetAll(ctx context.Context, skip, limit int64) ([]models.Alumni, error) {
	var alumni []models.Alumni
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

// Update overwrites the mutable fields of an existing alumni record
func (r *MongoAlumniRepository) Update(ctx context.Context, id string, alumni *models.Alumni) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid alumni ID format: %w", err)
	}

	alumni.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"fullName":       alumni.FullName,
			"email":          alumni.Email,
			"contactNumber":  alumni.ContactNumber,
			"enrollmentNo":   alumni.EnrollmentNo,
			"gender":         alumni.Gender,
			"department":     alumni.Department,
			"graduationYear": alumni.GraduationYear,
			"company":        alumni.Company,
			"address":        alumni.Address,
			"coverImageURL":  alumni.CoverImageURL,
			"updatedAt":      alumni.UpdatedAt,
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

// Delete removes an alumni record by ID
func (r *MongoAlumniRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid alumni ID format: %w", err)
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
