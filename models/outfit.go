package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slots an outfit can fill. Each slot references at most one WardrobeItem.
var Slots = []string{"tops", "bottoms", "shoes", "outerwear", "one_piece", "accessory"}

// SavedOutfit stores an outfit a user explicitly saved, one item id per slot.
type SavedOutfit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Occasion   string             `bson:"occasion" json:"occasion"`
	TopID      string             `bson:"top_id,omitempty" json:"top_id,omitempty"`
	BottomID   string             `bson:"bottom_id,omitempty" json:"bottom_id,omitempty"`
	ShoesID    string             `bson:"shoes_id,omitempty" json:"shoes_id,omitempty"`
	OuterID    string             `bson:"outerwear_id,omitempty" json:"outerwear_id,omitempty"`
	OnePieceID string             `bson:"one_piece_id,omitempty" json:"one_piece_id,omitempty"`
	AccessID   string             `bson:"accessory_id,omitempty" json:"accessory_id,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// SlotID returns the stored item id for the given slot name.
func (o *SavedOutfit) SlotID(slot string) string {
	switch slot {
	case "tops":
		return o.TopID
	case "bottoms":
		return o.BottomID
	case "shoes":
		return o.ShoesID
	case "outerwear":
		return o.OuterID
	case "one_piece":
		return o.OnePieceID
	case "accessory":
		return o.AccessID
	}
	return ""
}

// SetSlotID stores an item id under the given slot name.
func (o *SavedOutfit) SetSlotID(slot, id string) {
	switch slot {
	case "tops":
		o.TopID = id
	case "bottoms":
		o.BottomID = id
	case "shoes":
		o.ShoesID = id
	case "outerwear":
		o.OuterID = id
	case "one_piece":
		o.OnePieceID = id
	case "accessory":
		o.AccessID = id
	}
}

// EnrichedOutfit is a SavedOutfit with each slot resolved to the full item,
// as returned by the saved-outfits listing.
type EnrichedOutfit struct {
	ID        primitive.ObjectID       `json:"id"`
	Occasion  string                   `json:"occasion"`
	CreatedAt time.Time                `json:"created_at"`
	Items     map[string]*WardrobeItem `json:"items"`
}
