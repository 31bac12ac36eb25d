package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/idealwardrobe/backend/models"
	"github.com/idealwardrobe/backend/utils"
	"github.com/idealwardrobe/backend/vision"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxUploadSize = 15 << 20 // 15 MB

// ProcessClothingHandler runs the full ingestion pipeline for one photo:
// raw upload, background removal, normalization, attribute extraction,
// embedding, then the database insert.
func ProcessClothingHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Process Clothing API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	category := strings.ToLower(strings.TrimSpace(r.FormValue("category")))
	if !models.IsValidCategory(category) {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid category %q", category), http.StatusBadRequest)
		return
	}

	userID, status, err := RequireUserScope(r, r.FormValue("user_id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), status)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rawData, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to read image", http.StatusBadRequest)
		return
	}
	if len(rawData) == 0 {
		utils.RespondError(w, &logMessageBuilder, "Image file is empty", http.StatusBadRequest)
		return
	}
	if len(rawData) > maxUploadSize {
		utils.RespondError(w, &logMessageBuilder, "Image file is too large", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Upload: user=%s category=%s file=%s size=%d", userID, category, header.Filename, len(rawData)))

	// 1. Store the raw photo as received.
	itemID := uuid.New().String()
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	rawKey := fmt.Sprintf("wardrobe/raw/%s/%s%s", userID, itemID, ext)

	if _, err := utils.UploadFileToS3(r.Context(), bytes.NewReader(rawData), rawKey, header.Header.Get("Content-Type")); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to store raw image: %v", err), http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, "Raw image stored: "+rawKey)

	// 2. Isolate the garment. The heavy model calls run on their own timeout
	// so a slow upstream doesn't inherit the request deadline.
	visionCtx, cancelVision := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancelVision()

	cleanData, err := vision.RemoveBackground(visionCtx, rawData)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Background removal failed: %v", err), http.StatusBadGateway)
		return
	}

	// 3. Normalize: upright, flattened onto white, grid-sized.
	img, err := utils.DecodeUpright(cleanData)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to decode processed image: %v", err), http.StatusBadGateway)
		return
	}
	cleanPNG, err := utils.EncodePNG(utils.Thumbnail(utils.FlattenToWhite(img)))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to encode processed image: %v", err), http.StatusInternalServerError)
		return
	}

	cleanKey := fmt.Sprintf("wardrobe/clean/%s/%s.png", userID, itemID)
	if _, err := utils.UploadFileToS3(r.Context(), bytes.NewReader(cleanPNG), cleanKey, "image/png"); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to store processed image: %v", err), http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, "Clean image stored: "+cleanKey)

	// 4. Extract attributes. A bad extraction degrades the item, it never
	// loses the upload.
	attrs, err := vision.ExtractAttributes(visionCtx, cleanPNG)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Attribute extraction failed, using defaults: %v", err))
		attrs = models.DefaultAttributes(category)
	}
	// The user-selected category wins over whatever the model saw.
	attrs.Category = category

	// 5. Embed the attribute summary for the planner.
	var embedding []float32
	if vec, err := vision.EmbedText(visionCtx, vision.ItemEmbeddingText(attrs)); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Embedding failed, item stored without vector: %v", err))
	} else {
		embedding = vec
	}

	item := models.WardrobeItem{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Category:    category,
		FileName:    header.Filename,
		RawImageKey: rawKey,
		CleanKey:    cleanKey,
		Attributes:  attrs,
		Embedding:   embedding,
		CreatedAt:   time.Now(),
	}

	collection := utils.GetCollection(wardrobeCollection)
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, item); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to save item: %v", err), http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, "Item saved: "+item.ID.Hex())

	presignItem(r.Context(), &item)
	respondSuccess(w, http.StatusOK, processPayload(item))
}

// processPayload is the upload response contract: raw_url and clean_url for
// the stored images, the attribute bag, and the style tags lifted to the
// top so the frontend can render chips without digging into attributes.
func processPayload(item models.WardrobeItem) map[string]interface{} {
	styleTags := item.Attributes.StyleTags
	if styleTags == nil {
		styleTags = []string{}
	}
	return map[string]interface{}{
		"id":         item.ID.Hex(),
		"raw_url":    item.RawImageURL,
		"clean_url":  item.CleanURL,
		"attributes": item.Attributes,
		"style_tags": styleTags,
	}
}
