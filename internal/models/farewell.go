package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Farewell represents a farewell event document stored in MongoDB.
// Only one farewell may exist per date system-wide; the collection
// carries a unique index on the date field so concurrent creates
// cannot both succeed.
type Farewell struct {
	ID                       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title                    string             `json:"title" bson:"title" validate:"required"`
	Description              string             `json:"description" bson:"description" validate:"required,min=10"`
	Date                     time.Time          `json:"date" bson:"date" validate:"required,pastdate"`
	Venue                    string             `json:"venue" bson:"venue" validate:"required"`
	FinalYearStudentsPresent int                `json:"finalYearStudentsPresent" bson:"finalYearStudentsPresent" validate:"gte=0"`
	JuniorPresent            int                `json:"juniorPresent" bson:"juniorPresent" validate:"gte=0"`
	CoverImageURL            string             `json:"coverImageURL" bson:"coverImageURL" validate:"required,imageurl"`
	Photos                   []string           `json:"photos,omitempty" bson:"photos,omitempty" validate:"omitempty,dive,imageurl"`
	CreatedAt                time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt                time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UpdateFarewellRequest carries a partial update.
type UpdateFarewellRequest struct {
	Title                    *string  `json:"title,omitempty"`
	Description              *string  `json:"description,omitempty"`
	Date                     *string  `json:"date,omitempty"`
	Venue                    *string  `json:"venue,omitempty"`
	FinalYearStudentsPresent *int     `json:"finalYearStudentsPresent,omitempty"`
	JuniorPresent            *int     `json:"juniorPresent,omitempty"`
	CoverImageURL            *string  `json:"coverImageURL,omitempty"`
	Photos                   []string `json:"photos,omitempty"`
}
