package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutfitFeedback records a like/dislike on a recommended outfit.
type OutfitFeedback struct {
	ID          primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	UserID      string                   `bson:"user_id" json:"user_id"`
	OutfitID    string                   `bson:"outfit_id" json:"outfit_id"`
	Rating      string                   `bson:"rating" json:"rating"` // "like" or "dislike"
	Scenario    string                   `bson:"scenario" json:"scenario"`
	OutfitItems map[string]*WardrobeItem `bson:"outfit_items" json:"outfit_items"`
	CreatedAt   time.Time                `bson:"created_at" json:"created_at"`
}
