package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/idealwardrobe/backend/client"
	"github.com/idealwardrobe/backend/models"
)

func main() {
	baseURL := flag.String("server", "http://localhost:8080", "backend base URL")
	token := flag.String("token", "", "bearer token")
	userID := flag.String("user", "", "user id")
	category := flag.String("category", "tops", "category for uploaded photos")
	query := flag.String("query", "", "scenario to recommend an outfit for")
	flag.Parse()

	if *userID == "" {
		log.Fatal("user id is required")
	}

	ctx := context.Background()
	c := client.New(*baseURL, *token, *userID)
	view := client.NewWardrobeView(c)

	// Upload any photo paths given as arguments.
	if paths := flag.Args(); len(paths) > 0 {
		files := make([]client.UploadFile, 0, len(paths))
		for _, p := range paths {
			files = append(files, client.FileFromPath(p))
		}

		fmt.Printf("Uploading %d photos into %s...\n", len(files), *category)
		tasks := view.UploadBatch(ctx, files, *category)
		for _, t := range tasks {
			if t.Status == client.StatusCompleted {
				fmt.Printf("  %s: %s (%s)\n", t.FileName, t.Step, t.Item.ID.Hex())
			} else {
				fmt.Printf("  %s: %s: %v\n", t.FileName, t.Step, t.Err)
			}
		}
	}

	// List the full wardrobe.
	fmt.Println("Wardrobe:")
	for _, cat := range models.Categories {
		items, err := c.Wardrobe(ctx, cat)
		if err != nil {
			log.Printf("Failed to list %s: %v\n", cat, err)
			continue
		}
		for _, item := range items {
			fmt.Printf("  [%s] %s %s (%s)\n", cat, item.Attributes.PrimaryColor, item.Attributes.SubCategory, item.ID.Hex())
		}
	}

	// Recommend an outfit when asked.
	if *query != "" {
		fmt.Printf("Recommending for %q...\n", *query)
		result, err := c.Recommend(ctx, *query, "")
		if err != nil {
			log.Fatalf("Recommendation failed: %v", err)
		}

		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Printf("Result: %s\n", string(b))
	}
}
