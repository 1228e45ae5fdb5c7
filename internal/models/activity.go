package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCoverImage is stored when an activity is created without a cover.
const DefaultCoverImage = "/uploads/default.png"

// ActivityTypes is the fixed set of accepted activity categories.
var ActivityTypes = []string{"Sports", "Art", "Competition", "Cultural", "Educational", "Other"}

// Activity represents a college activity document stored in MongoDB.
// Media fields hold URLs, never file content; uploads are resolved to
// URLs before the record is validated.
type Activity struct {
	ID                primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title             string               `json:"title" bson:"title" validate:"required"`
	Description       string               `json:"description" bson:"description" validate:"required,min=10"`
	ActivityType      string               `json:"activityType" bson:"activityType" validate:"required,oneof=Sports Art Competition Cultural Educational Other"`
	Date              time.Time            `json:"date" bson:"date" validate:"required,pastdate"`
	ChiefGuest        string               `json:"chiefGuest,omitempty" bson:"chiefGuest,omitempty"`
	Venue             string               `json:"venue" bson:"venue" validate:"required"`
	Programs          []primitive.ObjectID `json:"programs,omitempty" bson:"programs,omitempty"` // loose references, existence not enforced
	StudentsPresent   int                  `json:"studentsPresent" bson:"studentsPresent" validate:"gte=0"`
	VolunteersPresent int                  `json:"volunteersPresent" bson:"volunteersPresent" validate:"gte=0"`
	Videos            []string             `json:"videos,omitempty" bson:"videos,omitempty" validate:"omitempty,dive,videourl"`
	CoverImageURL     string               `json:"coverImageURL" bson:"coverImageURL" validate:"required,coverpath"`
	Photos            []string             `json:"photos,omitempty" bson:"photos,omitempty" validate:"omitempty,dive,imageurl"`
	CreatedAt         time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UpdateActivityRequest carries a partial update; nil fields are left
// untouched and the merged record is validated again before saving.
type UpdateActivityRequest struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	ActivityType      *string  `json:"activityType,omitempty"`
	Date              *string  `json:"date,omitempty"`
	ChiefGuest        *string  `json:"chiefGuest,omitempty"`
	Venue             *string  `json:"venue,omitempty"`
	StudentsPresent   *int     `json:"studentsPresent,omitempty"`
	VolunteersPresent *int     `json:"volunteersPresent,omitempty"`
	Videos            []string `json:"videos,omitempty"`
	CoverImageURL     *string  `json:"coverImageURL,omitempty"`
	Photos            []string `json:"photos,omitempty"`
}
