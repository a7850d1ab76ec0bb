package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Type        string             `bson:"type" json:"type" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Capacity    int                `bson:"capacity" json:"capacity" validate:"required,gte=1"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	Amenities   []string           `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// RoomSearchParams carries the /rooms/search query. Zero values mean
// "no filter" for the optional fields.
type RoomSearchParams struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	RoomType    string
	PriceMin    float64
	PriceMax    float64
}
