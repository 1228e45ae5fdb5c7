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

// ClothDonationRepository defines the interface for donation data operations
type ClothDonationRepository interface {
	Create(ctx context.Context, donation *models.ClothDonation) error
	GetByID(ctx context.Context, id string) (*models.ClothDonation, error)
	GetAll(ctx context.Context, skip, limit int64) ([]models.ClothDonation, error)
	Update(ctx context.Context, id string, donation *models.ClothDonation) error
	Delete(ctx context.Context, id string) error
}

// MongoClothDonationRepository implements ClothDonationRepository for MongoDB
type MongoClothDonationRepository struct {
	collection *mongo.Collection
}

// NewMongoClothDonationRepository creates a new MongoClothDonationRepository
func NewMongoClothDonationRepository(db *mongo.Database) *MongoClothDonationRepository {
	return &MongoClothDonationRepository{collection: db.Collection("clothdonations")}
}

// Create inserts a new donation drive record
func (r *MongoClothDonationRepository) Create(ctx context.Context, donation *models.ClothDonation) error {
	donation.ID = primitive.NewObjectID()
	donation.CreatedAt = time.Now()
	donation.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, donation)
	return err
}

// GetByID retrieves a donation record by ID
func (r *MongoClothDonationRepository) GetByID(ctx context.Context, id string) (*models.ClothDonation, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid donation ID format: %w", err)
	}

	var donation models.ClothDonation
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&donation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &donation, nil
}

// GetAll retrieves donation records with pagination, newest first
func (r *MongoClothDonationRepository) GetAll(ctx context.Context, skip, limit int64) ([]models.ClothDonation, error) {
	var donations []models.ClothDonation
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// Update overwrites the mutable fields of an existing donation record
func (r *MongoClothDonationRepository) Update(ctx context.Context, id string, donation *models.ClothDonation) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid donation ID format: %w", err)
	}

	donation.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":            donation.Title,
			"description":      donation.Description,
			"date":             donation.Date,
			"location":         donation.Location,
			"studentsReceived": donation.StudentsReceived,
			"parentsReceived":  donation.ParentsReceived,
			"coverImageURL":    donation.CoverImageURL,
			"photos":           donation.Photos,
			"updatedAt":        donation.UpdatedAt,
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

// Delete removes a donation record by ID
func (r *MongoClothDonationRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid donation ID format: %w", err)
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
