package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genders is the fixed set accepted for Alumni.Gender.
var Genders = []string{"Male", "Female", "Other"}

// Alumni represents an alumni record document stored in MongoDB.
type Alumni struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FullName       string             `json:"fullName" bson:"fullName" validate:"required"`
	Email          string             `json:"email" bson:"email" validate:"required,email"`
	ContactNumber  string             `json:"contactNumber" bson:"contactNumber" validate:"required"`
	EnrollmentNo   string             `json:"enrollmentNo" bson:"enrollmentNo" validate:"required"`
	Gender         string             `json:"gender" bson:"gender" validate:"required,oneof=Male Female Other"`
	Department     string             `json:"department" bson:"department" validate:"required"`
	GraduationYear int                `json:"graduationYear" bson:"graduationYear" validate:"required,gte=0"`
	Company        string             `json:"company,omitempty" bson:"company,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	CoverImageURL  string             `json:"coverImageURL" bson:"coverImageURL" validate:"required,coverpath"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UpdateAlumniRequest carries a partial update.
type UpdateAlumniRequest struct {
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty"`
	ContactNumber  *string `json:"contactNumber,omitempty"`
	EnrollmentNo   *string `json:"enrollmentNo,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Department     *string `json:"department,omitempty"`
	GraduationYear *int    `json:"graduationYear,omitempty"`
	Company        *string `json:"company,omitempty"`
	Address        *string `json:"address,omitempty"`
	CoverImageURL  *string `json:"coverImageURL,omitempty"`
}
