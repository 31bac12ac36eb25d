package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories the wardrobe accepts, as stored in the database.
var Categories = []string{"tops", "bottoms", "shoes", "outerwear", "accessory", "one_piece"}

// IsValidCategory reports whether c is one of the fixed wardrobe categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Attributes is the attribute bag produced by the vision model for one item.
// The planner reads a few fields; everything else is passed through untouched.
type Attributes struct {
	Category         string   `bson:"category" json:"category"`
	SubCategory      string   `bson:"sub_category" json:"sub_category"`
	PrimaryColor     string   `bson:"primary_color" json:"primary_color"`
	SecondaryColor   string   `bson:"secondary_color,omitempty" json:"secondary_color,omitempty"`
	Pattern          string   `bson:"pattern" json:"pattern"`
	Material         string   `bson:"material" json:"material"`
	Seasonality      []string `bson:"seasonality" json:"seasonality"`
	Formality        string   `bson:"formality" json:"formality"`
	Fit              string   `bson:"fit" json:"fit"`
	Occasion         []string `bson:"occasion" json:"occasion"`
	StyleTags        []string `bson:"style_tags" json:"style_tags"`
	LayerRole        string   `bson:"layer_role" json:"layer_role"`
	SilhouetteVolume string   `bson:"silhouette_volume" json:"silhouette_volume"`
	PairingBias      float64  `bson:"pairing_bias" json:"pairing_bias"`
	LengthProfile    string   `bson:"length_profile" json:"length_profile"`
}

// DefaultAttributes is the fallback bag used when attribute extraction fails.
func DefaultAttributes(category string) Attributes {
	return Attributes{
		Category:         category,
		SubCategory:      "Unknown",
		PrimaryColor:     "Black",
		Pattern:          "Solid",
		Material:         "Cotton",
		Seasonality:      []string{"All-Season"},
		Formality:        "Casual",
		Fit:              "Regular",
		Occasion:         []string{"Everyday"},
		StyleTags:        []string{"Classic"},
		LayerRole:        "Base",
		SilhouetteVolume: "Regular",
		PairingBias:      0.5,
		LengthProfile:    "Standard",
	}
}

// WardrobeItem represents one processed clothing item owned by a user.
// Items are created on upload and deleted on request, never edited in place.
type WardrobeItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Category    string             `bson:"category" json:"category"`
	FileName    string             `bson:"file_name" json:"file_name"`
	RawImageKey string             `bson:"raw_image_key" json:"-"`
	RawImageURL string             `bson:"-" json:"raw_image_url,omitempty"`
	CleanKey    string             `bson:"clean_image_key" json:"-"`
	CleanURL    string             `bson:"-" json:"clean_image_url,omitempty"`
	Attributes  Attributes         `bson:"attributes" json:"attributes"`
	Embedding   []float32          `bson:"embedding,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
