package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/idealwardrobe/backend/models"
	"github.com/idealwardrobe/backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveOutfitRequest is the request body for saving an outfit: an occasion
// label plus one wardrobe item id per filled slot.
type SaveOutfitRequest struct {
	UserID   string            `json:"user_id"`
	Occasion string            `json:"occasion"`
	Items    map[string]string `json:"items"`
}

// SaveOutfitHandler stores an outfit the user wants to keep.
func SaveOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Save Outfit API]")

	var req SaveOutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, req.UserID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	outfit := models.SavedOutfit{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Occasion:  req.Occasion,
		CreatedAt: time.Now(),
	}
	filled := 0
	for slot, id := range req.Items {
		if id == "" {
			continue
		}
		if !validSlot(slot) {
			utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Unknown slot %q", slot), http.StatusBadRequest)
			return
		}
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid item id for slot %q", slot), http.StatusBadRequest)
			return
		}
		outfit.SetSlotID(slot, id)
		filled++
	}
	if filled == 0 {
		utils.RespondError(w, &logMessageBuilder, "Outfit has no items", http.StatusBadRequest)
		return
	}

	collection := utils.GetCollection(outfitCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, outfit); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to save outfit", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Saved outfit %s for user %s (%d slots)", outfit.ID.Hex(), userID, filled))
	respondSuccess(w, http.StatusOK, outfit)
}

func validSlot(slot string) bool {
	for _, s := range models.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SavedOutfitsHandler lists the user's saved outfits with each slot resolved
// to the full wardrobe item. Slots referencing since-deleted items are
// dropped silently.
func SavedOutfitsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Saved Outfits API]")

	userID, status, err := RequireUserScope(r, r.URL.Query().Get("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := utils.GetCollection(outfitCollection).Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch outfits", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var outfits []models.SavedOutfit
	if err := cursor.All(ctx, &outfits); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to decode outfits", http.StatusInternalServerError)
		return
	}

	enriched := make([]models.EnrichedOutfit, 0, len(outfits))
	wardrobe := utils.GetCollection(wardrobeCollection)
	for _, o := range outfits {
		e := models.EnrichedOutfit{
			ID:        o.ID,
			Occasion:  o.Occasion,
			CreatedAt: o.CreatedAt,
			Items:     map[string]*models.WardrobeItem{},
		}
		for _, slot := range models.Slots {
			id := o.SlotID(slot)
			if id == "" {
				continue
			}
			objID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				continue
			}
			var item models.WardrobeItem
			if err := wardrobe.FindOne(ctx, bson.M{"_id": objID, "user_id": userID}).Decode(&item); err != nil {
				continue
			}
			presignItem(r.Context(), &item)
			e.Items[slot] = &item
		}
		enriched = append(enriched, e)
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("user=%s outfits=%d", userID, len(enriched)))
	respondSuccess(w, http.StatusOK, enriched)
}

// SavedOutfitDeleteHandler removes one saved outfit the user owns.
func SavedOutfitDeleteHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Saved Outfit Delete API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid outfit ID", http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, r.URL.Query().Get("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	res, err := utils.GetCollection(outfitCollection).DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to delete outfit", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, &logMessageBuilder, "Outfit not found", http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Deleted outfit "+objID.Hex())
	respondSuccess(w, http.StatusOK, map[string]string{"id": objID.Hex()})
}
