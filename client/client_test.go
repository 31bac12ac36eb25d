package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/idealwardrobe/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func okEnvelope(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func errEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": message})
}

func fakeItem(category, subCategory string) models.WardrobeItem {
	return models.WardrobeItem{
		ID:       primitive.NewObjectID(),
		UserID:   "u1",
		Category: category,
		Attributes: models.Attributes{
			Category:    category,
			SubCategory: subCategory,
		},
	}
}

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		okEnvelope(w, []models.WardrobeItem{fakeItem("tops", "Tee")})
	}))
	defer srv.Close()

	c := New(srv.URL, "", "u1")
	items, err := c.Wardrobe(context.Background(), "tops")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tee", items[0].Attributes.SubCategory)
}

func TestClientSuccessFalseBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errEnvelope(w, http.StatusBadRequest, "User ID required")
	}))
	defer srv.Close()

	c := New(srv.URL, "", "u1")
	_, err := c.Wardrobe(context.Background(), "tops")
	require.Error(t, err)
	assert.Equal(t, "User ID required", err.Error())
}

func TestClientSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		okEnvelope(w, []models.WardrobeItem{})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-123", "u1")
	_, err := c.Wardrobe(context.Background(), "tops")
	require.NoError(t, err)
}

func TestClientNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL, "", "u1")
	_, err := c.Wardrobe(context.Background(), "tops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestProcessClothingMultipart(t *testing.T) {
	item := fakeItem("tops", "Hoodie")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "tops", r.FormValue("category"))
		assert.Equal(t, "u1", r.FormValue("user_id"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "hoodie.jpg", header.Filename)

		okEnvelope(w, processData(item))
	}))
	defer srv.Close()

	c := New(srv.URL, "", "u1")
	got, err := c.ProcessClothing(context.Background(), "hoodie.jpg", bytes.NewReader([]byte("jpegdata")), "tops")
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Hoodie", got.Attributes.SubCategory)
	assert.Equal(t, "tops", got.Category)
	assert.Equal(t, "hoodie.jpg", got.FileName)
	assert.Equal(t, "https://cdn.example.com/clean.png", got.CleanURL)
}

// processData mimics the upload endpoint's data payload.
func processData(item models.WardrobeItem) map[string]interface{} {
	return map[string]interface{}{
		"id":         item.ID.Hex(),
		"raw_url":    "https://cdn.example.com/raw.jpg",
		"clean_url":  "https://cdn.example.com/clean.png",
		"attributes": item.Attributes,
		"style_tags": item.Attributes.StyleTags,
	}
}

func TestRecommendDecodesTopLevelResult(t *testing.T) {
	item := fakeItem("tops", "Hoodie")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])
		assert.Equal(t, "dinner date", body["query"])

		// The recommend contract: result fields beside success, no data key.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":      true,
			"outfit":       map[string]models.WardrobeItem{"tops": item},
			"template":     "smart_casual",
			"method":       "vector-planner",
			"weather":      map[string]interface{}{"temp": 18.5, "condition": "cloudy"},
			"confidence":   map[string]interface{}{"score": 0.87, "percentage": 87},
			"shopping_tip": "",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", "u1")
	result, err := c.Recommend(context.Background(), "dinner date", "")
	require.NoError(t, err)

	assert.Equal(t, "smart_casual", result.Template)
	assert.Equal(t, "vector-planner", result.Method)
	assert.Equal(t, 18.5, result.Weather.TempC)
	assert.Equal(t, 87, result.Confidence.Percentage)
	require.NotNil(t, result.Outfit["tops"])
	assert.Equal(t, "Hoodie", result.Outfit["tops"].Attributes.SubCategory)
}

func TestRecommendSuccessFalseBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errEnvelope(w, http.StatusBadRequest, "no items found in wardrobe")
	}))
	defer srv.Close()

	c := New(srv.URL, "", "u1")
	_, err := c.Recommend(context.Background(), "anything", "")
	require.Error(t, err)
	assert.Equal(t, "no items found in wardrobe", err.Error())
}

func TestSaveAndDeleteOutfit(t *testing.T) {
	outfitID := primitive.NewObjectID()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/save-outfit":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "u1", body["user_id"])
			okEnvelope(w, models.SavedOutfit{ID: outfitID, UserID: "u1", Occasion: "date night"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/saved-outfits/"+outfitID.Hex():
			okEnvelope(w, map[string]string{"id": outfitID.Hex()})
		default:
			errEnvelope(w, http.StatusNotFound, "not found")
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "", "u1")
	saved, err := c.SaveOutfit(context.Background(), "date night", map[string]string{"tops": primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	assert.Equal(t, outfitID, saved.ID)

	require.NoError(t, c.DeleteOutfit(context.Background(), outfitID.Hex()))
}
