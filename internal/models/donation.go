package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoLocation is the drop-off point of a donation drive.
type GeoLocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"longitude"`
}

// ClothDonation represents a cloth donation drive document stored in MongoDB.
type ClothDonation struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title" validate:"required"`
	Description      string             `json:"description" bson:"description" validate:"required,min=10"`
	Date             time.Time          `json:"date" bson:"date" validate:"required,pastdate"`
	Location         GeoLocation        `json:"location" bson:"location"`
	StudentsReceived int                `json:"studentsReceived" bson:"studentsReceived" validate:"gte=0"`
	ParentsReceived  int                `json:"parentsReceived" bson:"parentsReceived" validate:"gte=0"`
	CoverImageURL    string             `json:"coverImageURL,omitempty" bson:"coverImageURL,omitempty" validate:"omitempty,imageurl"`
	Photos           []string           `json:"photos,omitempty" bson:"photos,omitempty" validate:"omitempty,dive,imageurl"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UpdateClothDonationRequest carries a partial update.
type UpdateClothDonationRequest struct {
	Title            *string  `json:"title,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Date             *string  `json:"date,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	StudentsReceived *int     `json:"studentsReceived,omitempty"`
	ParentsReceived  *int     `json:"parentsReceived,omitempty"`
	CoverImageURL    *string  `json:"coverImageURL,omitempty"`
	Photos           []string `json:"photos,omitempty"`
}
