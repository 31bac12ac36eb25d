// Package client is the Go client for the wardrobe backend. It owns the
// upload pipeline state machine and the wardrobe view the frontend renders.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/idealwardrobe/backend/models"
	"github.com/idealwardrobe/backend/planner"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client talks to one wardrobe backend on behalf of one user.
type Client struct {
	BaseURL    string
	Token      string
	UserID     string
	HTTPClient *http.Client
}

// New returns a client for the given backend and user.
func New(baseURL, token, userID string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		UserID:     userID,
		HTTPClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// send executes the request with auth attached and returns the response
// body and status.
func (c *Client) send(req *http.Request) ([]byte, int, error) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// do sends the request, decodes the envelope and unmarshals data into out.
// A success:false envelope becomes an error regardless of HTTP status.
func (c *Client) do(req *http.Request, out interface{}) error {
	body, status, err := c.send(req)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", status, err)
	}
	if !env.Success {
		if env.Error == "" {
			env.Error = fmt.Sprintf("server returned status %d", status)
		}
		return fmt.Errorf("%s", env.Error)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ProcessClothing uploads one photo for processing and returns the stored
// wardrobe item.
func (c *Client) ProcessClothing(ctx context.Context, fileName string, image io.Reader, category string) (*models.WardrobeItem, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileName, err)
	}
	if err := mw.WriteField("category", category); err != nil {
		return nil, err
	}
	if err := mw.WriteField("user_id", c.UserID); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/process-clothing", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	// The upload endpoint responds {id, raw_url, clean_url, attributes,
	// style_tags} rather than a full item document.
	var data struct {
		ID         primitive.ObjectID `json:"id"`
		RawURL     string             `json:"raw_url"`
		CleanURL   string             `json:"clean_url"`
		Attributes models.Attributes  `json:"attributes"`
		StyleTags  []string           `json:"style_tags"`
	}
	if err := c.do(req, &data); err != nil {
		return nil, err
	}

	return &models.WardrobeItem{
		ID:          data.ID,
		UserID:      c.UserID,
		Category:    data.Attributes.Category,
		FileName:    fileName,
		RawImageURL: data.RawURL,
		CleanURL:    data.CleanURL,
		Attributes:  data.Attributes,
	}, nil
}

// Wardrobe fetches one category of the user's wardrobe.
func (c *Client) Wardrobe(ctx context.Context, category string) ([]models.WardrobeItem, error) {
	var items []models.WardrobeItem
	path := fmt.Sprintf("/api/wardrobe/%s?user_id=%s", url.PathEscape(category), url.QueryEscape(c.UserID))
	if err := c.getJSON(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem removes one wardrobe item.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/api/wardrobe/%s?user_id=%s", url.PathEscape(id), url.QueryEscape(c.UserID)))
}

// SaveOutfit stores an outfit under an occasion label.
func (c *Client) SaveOutfit(ctx context.Context, occasion string, items map[string]string) (*models.SavedOutfit, error) {
	payload := map[string]interface{}{
		"user_id":  c.UserID,
		"occasion": occasion,
		"items":    items,
	}
	var saved models.SavedOutfit
	if err := c.postJSON(ctx, "/api/save-outfit", payload, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// SavedOutfits fetches the user's saved outfits with items resolved.
func (c *Client) SavedOutfits(ctx context.Context) ([]models.EnrichedOutfit, error) {
	var outfits []models.EnrichedOutfit
	if err := c.getJSON(ctx, "/api/saved-outfits?user_id="+url.QueryEscape(c.UserID), &outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// DeleteOutfit removes one saved outfit.
func (c *Client) DeleteOutfit(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/api/saved-outfits/%s?user_id=%s", url.PathEscape(id), url.QueryEscape(c.UserID)))
}

// Recommend plans an outfit for a scenario query. weather, when non-empty,
// overrides the live condition. The recommend endpoint puts the result
// fields beside success instead of under data, so it skips the shared
// envelope decode.
func (c *Client) Recommend(ctx context.Context, query, weather string) (*planner.Result, error) {
	payload := map[string]string{
		"user_id": c.UserID,
		"query":   query,
		"weather": weather,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/recommend-outfit", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, status, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		planner.Result
	}
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", status, err)
	}
	if !env.Success {
		if env.Error == "" {
			env.Error = fmt.Sprintf("server returned status %d", status)
		}
		return nil, fmt.Errorf("%s", env.Error)
	}

	result := env.Result
	return &result, nil
}

// SwapItem asks for an alternative item for one slot of the current outfit.
func (c *Client) SwapItem(ctx context.Context, slot string, current map[string]*models.WardrobeItem) (*models.WardrobeItem, error) {
	payload := map[string]interface{}{
		"user_id":        c.UserID,
		"slot":           slot,
		"current_outfit": current,
	}
	var item models.WardrobeItem
	if err := c.postJSON(ctx, "/api/swap-item", payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SendFeedback rates a recommended outfit.
func (c *Client) SendFeedback(ctx context.Context, outfitID, rating, scenario string, items map[string]*models.WardrobeItem) error {
	payload := map[string]interface{}{
		"user_id":      c.UserID,
		"outfit_id":    outfitID,
		"rating":       rating,
		"scenario":     scenario,
		"outfit_items": items,
	}
	return c.postJSON(ctx, "/api/feedback", payload, nil)
}

// Essentials fetches the global essentials catalog.
func (c *Client) Essentials(ctx context.Context) ([]models.EssentialItem, error) {
	var items []models.EssentialItem
	if err := c.getJSON(ctx, "/api/essentials", &items); err != nil {
		return nil, err
	}
	return items, nil
}
