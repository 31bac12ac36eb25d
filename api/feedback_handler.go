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

// FeedbackRequest is the request body for rating a recommended outfit.
type FeedbackRequest struct {
	UserID      string                          `json:"user_id"`
	OutfitID    string                          `json:"outfit_id"`
	Rating      string                          `json:"rating"`
	Scenario    string                          `json:"scenario"`
	OutfitItems map[string]*models.WardrobeItem `json:"outfit_items"`
}

// FeedbackHandler records a like or dislike on a recommendation. The rated
// items are snapshotted so the signal survives wardrobe deletions.
func FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Feedback API]")

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Rating != "like" && req.Rating != "dislike" {
		utils.RespondError(w, &logMessageBuilder, "Rating must be like or dislike", http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, req.UserID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	feedback := models.OutfitFeedback{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		OutfitID:    req.OutfitID,
		Rating:      req.Rating,
		Scenario:    req.Scenario,
		OutfitItems: req.OutfitItems,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if _, err := utils.GetCollection(feedbackCollection).InsertOne(ctx, feedback); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to save feedback", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Feedback %s from user %s (%s)", feedback.ID.Hex(), userID, req.Rating))
	respondSuccess(w, http.StatusOK, feedback)
}

// FeedbackListHandler returns all feedback a user has given, newest first.
func FeedbackListHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Feedback List API]")

	userID, status, err := RequireUserScope(r, r.PathValue("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := utils.GetCollection(feedbackCollection).Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch feedback", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var entries []models.OutfitFeedback
	if err := cursor.All(ctx, &entries); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to decode feedback", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.OutfitFeedback{}
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("user=%s entries=%d", userID, len(entries)))
	respondSuccess(w, http.StatusOK, entries)
}

// FeedbackDeleteHandler removes a single feedback entry the user owns.
func FeedbackDeleteHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Feedback Delete API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid feedback ID", http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, r.URL.Query().Get("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	res, err := utils.GetCollection(feedbackCollection).DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to delete feedback", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, &logMessageBuilder, "Feedback not found", http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Deleted feedback "+objID.Hex())
	respondSuccess(w, http.StatusOK, map[string]string{"id": objID.Hex()})
}

// FeedbackClearHandler removes every feedback entry a user has given.
func FeedbackClearHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Feedback Clear API]")

	userID, status, err := RequireUserScope(r, r.PathValue("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	res, err := utils.GetCollection(feedbackCollection).DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to clear feedback", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Cleared %d feedback entries for user %s", res.DeletedCount, userID))
	respondSuccess(w, http.StatusOK, map[string]interface{}{"deleted": res.DeletedCount})
}
