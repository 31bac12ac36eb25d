package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/idealwardrobe/backend/models"
	"github.com/idealwardrobe/backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WardrobeListHandler returns one category of the requesting user's wardrobe,
// newest first, with presigned image URLs.
func WardrobeListHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Wardrobe List API]")

	category := strings.ToLower(r.PathValue("category"))
	if !models.IsValidCategory(category) {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid category %q", category), http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, r.URL.Query().Get("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	collection := utils.GetCollection(wardrobeCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userID, "category": category}, findOptions)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch wardrobe", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.WardrobeItem
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to decode wardrobe", http.StatusInternalServerError)
		return
	}

	for i := range items {
		presignItem(r.Context(), &items[i])
	}

	// Empty categories respond with [] rather than null.
	if items == nil {
		items = []models.WardrobeItem{}
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("user=%s category=%s items=%d", userID, category, len(items)))
	respondSuccess(w, http.StatusOK, items)
}

// WardrobeDeleteHandler removes one item the requesting user owns, along
// with its stored images. Unknown or foreign ids respond 404.
func WardrobeDeleteHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Wardrobe Delete API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid item ID", http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, r.URL.Query().Get("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	collection := utils.GetCollection(wardrobeCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var item models.WardrobeItem
	if err := collection.FindOneAndDelete(ctx, bson.M{"_id": objID, "user_id": userID}).Decode(&item); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Item not found", http.StatusNotFound)
		return
	}

	// Best-effort image cleanup. The database row is already gone; a leaked
	// object only costs storage.
	for _, key := range []string{item.RawImageKey, item.CleanKey} {
		if key == "" {
			continue
		}
		if err := utils.DeleteFileFromS3(r.Context(), key); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to delete object %s: %v", key, err))
		}
	}

	utils.AddToLogMessage(&logMessageBuilder, "Deleted item "+objID.Hex())
	respondSuccess(w, http.StatusOK, map[string]string{"id": objID.Hex()})
}
