package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/idealwardrobe/backend/catalog"
	"github.com/idealwardrobe/backend/config"
	"github.com/idealwardrobe/backend/utils"
)

// EssentialsHandler returns the global essentials catalog. Not user-scoped.
func EssentialsHandler(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, catalog.Items())
}

// ImportEssentialRequest is the request body for pulling one product page
// into the essentials catalog.
type ImportEssentialRequest struct {
	URL      string `json:"url"`
	Category string `json:"category"`
}

// ImportEssentialHandler scrapes a product page and appends it to the
// essentials catalog.
func ImportEssentialHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Import Essential API]")

	var req ImportEssentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		utils.RespondError(w, &logMessageBuilder, "URL is required", http.StatusBadRequest)
		return
	}

	item, err := catalog.ImportProduct(r.Context(), req.URL, strings.ToLower(req.Category))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Import failed: %v", err), http.StatusBadGateway)
		return
	}

	catalog.Add(*item)
	if err := catalog.Save(config.EssentialsPath); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to persist catalog: %v", err))
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Imported %q from %s", item.Name, req.URL))
	respondSuccess(w, http.StatusOK, item)
}
