package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/idealwardrobe/backend/models"
)

const importerUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ImportProduct fetches a static product page and extracts an EssentialItem
// from its metadata. Open Graph tags are tried first, generic markup second.
func ImportProduct(ctx context.Context, url, category string) (*models.EssentialItem, error) {
	if !models.IsValidCategory(category) {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", importerUserAgent)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product page: %w", err)
	}

	item := ParseProductDocument(doc, category)
	if item.Name == "" {
		return nil, fmt.Errorf("no product title found at %s", url)
	}
	item.ProductURL = resp.Request.URL.String()
	return item, nil
}

// ParseProductDocument extracts the catalog fields from a parsed page.
func ParseProductDocument(doc *goquery.Document, category string) *models.EssentialItem {
	item := &models.EssentialItem{
		ID:       uuid.New().String(),
		Category: category,
	}

	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		item.Name = strings.TrimSpace(v)
	}
	if item.Name == "" {
		item.Name = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	if v, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		item.ImageURL = strings.TrimSpace(v)
	}
	if item.ImageURL == "" {
		if v, ok := doc.Find("img").First().Attr("src"); ok {
			item.ImageURL = strings.TrimSpace(v)
		}
	}

	if v, ok := doc.Find(`meta[property="product:price:amount"]`).Attr("content"); ok {
		item.Price = strings.TrimSpace(v)
	}
	if item.Price == "" {
		if v, ok := doc.Find(`meta[property="og:price:amount"]`).Attr("content"); ok {
			item.Price = strings.TrimSpace(v)
		}
	}

	return item
}
