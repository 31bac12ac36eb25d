package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/idealwardrobe/backend/models"
	"github.com/idealwardrobe/backend/planner"
	"github.com/idealwardrobe/backend/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// Recommender is the planner used by the recommendation endpoints,
// wired at startup.
var Recommender *planner.Planner

// RecommendRequest is the request body for an outfit recommendation.
type RecommendRequest struct {
	UserID  string `json:"user_id"`
	Query   string `json:"query"`
	Weather string `json:"weather,omitempty"` // manual condition override
}

// loadWardrobe fetches every item the user owns, for the planner.
func loadWardrobe(ctx context.Context, userID string) ([]*models.WardrobeItem, error) {
	cursor, err := utils.GetCollection(wardrobeCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*models.WardrobeItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RecommendOutfitHandler plans an outfit for the user's scenario query.
func RecommendOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Recommend Outfit API]")

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		utils.RespondError(w, &logMessageBuilder, "Query is required", http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, req.UserID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}
	if Recommender == nil {
		utils.RespondError(w, &logMessageBuilder, "Recommender not initialized", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	items, err := loadWardrobe(ctx, userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch wardrobe", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Planning: user=%s query=%q items=%d", userID, req.Query, len(items)))

	result, err := Recommender.Plan(r.Context(), req.Query, items, req.Weather)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	for _, item := range result.Outfit {
		presignItem(r.Context(), item)
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Planned via %s, template=%s, score=%.2f", result.Method, result.Template, result.Confidence.Score))
	utils.RespondJSON(w, http.StatusOK, recommendPayload(result))
}

// recommendPayload flattens the planner result beside the success flag.
// The frontend reads outfit, weather and confidence as top-level keys, not
// under data.
func recommendPayload(result *planner.Result) map[string]interface{} {
	return map[string]interface{}{
		"success":      true,
		"outfit":       result.Outfit,
		"template":     result.Template,
		"method":       result.Method,
		"weather":      result.Weather,
		"confidence":   result.Confidence,
		"shopping_tip": result.ShoppingTip,
	}
}

// SwapRequest asks for an alternative item for one slot of an outfit while
// the other slots stay locked.
type SwapRequest struct {
	UserID        string                          `json:"user_id"`
	Slot          string                          `json:"slot"`
	CurrentOutfit map[string]*models.WardrobeItem `json:"current_outfit"`
}

// SwapItemHandler returns a random different item for one outfit slot, so
// the user can cycle through alternatives without replanning.
func SwapItemHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Swap Item API]")

	var req SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	slot := strings.ToLower(req.Slot)
	if !models.IsValidCategory(slot) {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid slot %q", req.Slot), http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, req.UserID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	// Ids already on the outfit are not offered as alternatives.
	inUse := map[string]bool{}
	for _, item := range req.CurrentOutfit {
		if item != nil {
			inUse[item.ID.Hex()] = true
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	cursor, err := utils.GetCollection(wardrobeCollection).Find(ctx, bson.M{"user_id": userID, "category": slot})
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

	var alternatives []models.WardrobeItem
	for _, item := range items {
		if !inUse[item.ID.Hex()] {
			alternatives = append(alternatives, item)
		}
	}
	if len(alternatives) == 0 {
		utils.RespondError(w, &logMessageBuilder, "No alternative items for this slot", http.StatusNotFound)
		return
	}

	pick := alternatives[rand.Intn(len(alternatives))]
	presignItem(r.Context(), &pick)

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Swap in slot %s -> %s", slot, pick.ID.Hex()))
	respondSuccess(w, http.StatusOK, pick)
}
