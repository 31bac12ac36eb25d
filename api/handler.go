package api

import (
	"context"
	"net/http"
	"time"

	"github.com/idealwardrobe/backend/models"
	"github.com/idealwardrobe/backend/utils"
)

// Collection names used by the wardrobe API.
const (
	wardrobeCollection = "wardrobe_items"
	outfitCollection   = "saved_outfits"
	feedbackCollection = "outfit_feedback"
)

const dbTimeout = 10 * time.Second

// respondSuccess sends the standard {success:true, data} envelope.
func respondSuccess(w http.ResponseWriter, status int, data interface{}) {
	utils.RespondJSON(w, status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// presignItem fills the transient image URLs of an item from its stored
// object keys. Presign failures leave the URL empty rather than failing
// the whole request.
func presignItem(ctx context.Context, item *models.WardrobeItem) {
	if item == nil {
		return
	}
	if item.RawImageKey != "" {
		if url, err := utils.GetPresignedURL(ctx, item.RawImageKey); err == nil {
			item.RawImageURL = url
		}
	}
	if item.CleanKey != "" {
		if url, err := utils.GetPresignedURL(ctx, item.CleanKey); err == nil {
			item.CleanURL = url
		}
	}
}

// HealthHandler reports service liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
