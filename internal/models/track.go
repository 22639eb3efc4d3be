package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Track is one playlist entry. FileID is the opaque media handle issued by
// Telegram when the admin uploaded the audio.
type Track struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FileID  string             `bson:"file_id" json:"file_id"`
	Title   string             `bson:"title" json:"title"`
	AddedAt time.Time          `bson:"added_at" json:"added_at"`
}
