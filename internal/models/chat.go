package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is immutable once stored; history is replayed in timestamp
// order to every newly connected channel client.
type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender    string             `bson:"sender" json:"sender" validate:"required"`
	Text      string             `bson:"text" json:"text" validate:"required"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
