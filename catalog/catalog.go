// Package catalog manages the global essentials catalog: staple items the
// shopping engine can recommend when a wardrobe has gaps.
package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/idealwardrobe/backend/models"
)

var (
	mu         sync.RWMutex
	essentials []models.EssentialItem
)

// Load reads the essentials JSON file into memory. Missing or corrupt files
// are logged and leave the catalog empty; the rest of the app keeps working.
func Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Essentials catalog not loaded (%s): %v", path, err)
		return
	}

	var items []models.EssentialItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Essentials catalog is not valid JSON (%s): %v", path, err)
		return
	}

	mu.Lock()
	essentials = items
	mu.Unlock()
	log.Printf("Loaded %d essential fashion items", len(items))
}

// Items returns a copy of the current catalog.
func Items() []models.EssentialItem {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]models.EssentialItem, len(essentials))
	copy(out, essentials)
	return out
}

// Add appends an imported item to the in-memory catalog.
func Add(item models.EssentialItem) {
	mu.Lock()
	essentials = append(essentials, item)
	mu.Unlock()
}

// Count returns the catalog size.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(essentials)
}

// Save writes the catalog back to disk.
func Save(path string) error {
	mu.RLock()
	data, err := json.MarshalIndent(essentials, "", "  ")
	mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal essentials: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write essentials: %w", err)
	}
	return nil
}
