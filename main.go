package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/idealwardrobe/backend/api"
	"github.com/idealwardrobe/backend/catalog"
	"github.com/idealwardrobe/backend/config"
	"github.com/idealwardrobe/backend/planner"
	"github.com/idealwardrobe/backend/utils"
	"github.com/idealwardrobe/backend/vision"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Initialize S3
	if err := utils.InitS3(); err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	// Essentials catalog and the outfit planner
	catalog.Load(config.EssentialsPath)
	api.Recommender = &planner.Planner{
		Embed:      vision.EmbedText,
		Essentials: catalog.Items,
	}

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	route := func(pattern string, handler http.HandlerFunc) {
		http.HandleFunc(pattern, corsMiddleware(api.AuthMiddleware(handler)))
	}

	// Method-specific patterns don't match preflight requests.
	http.HandleFunc("OPTIONS /", corsMiddleware(func(w http.ResponseWriter, r *http.Request) {}))

	http.HandleFunc("GET /api/health", corsMiddleware(api.HealthHandler))

	route("POST /api/process-clothing", api.ProcessClothingHandler)
	route("GET /api/wardrobe/{category}", api.WardrobeListHandler)
	route("DELETE /api/wardrobe/{id}", api.WardrobeDeleteHandler)

	route("POST /api/save-outfit", api.SaveOutfitHandler)
	route("GET /api/saved-outfits", api.SavedOutfitsHandler)
	route("DELETE /api/saved-outfits/{id}", api.SavedOutfitDeleteHandler)

	route("POST /api/recommend-outfit", api.RecommendOutfitHandler)
	route("POST /api/swap-item", api.SwapItemHandler)

	route("POST /api/feedback", api.FeedbackHandler)
	route("GET /api/feedback/{user_id}", api.FeedbackListHandler)
	route("DELETE /api/feedback/clear/{user_id}", api.FeedbackClearHandler)
	route("DELETE /api/feedback/{id}", api.FeedbackDeleteHandler)

	route("GET /api/essentials", api.EssentialsHandler)
	route("POST /api/essentials/import", api.ImportEssentialHandler)

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
