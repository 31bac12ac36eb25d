// Package vision wraps the Gemini calls the processing pipeline depends on:
// background removal, attribute extraction and embeddings.
package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/idealwardrobe/backend/config"
	"github.com/idealwardrobe/backend/models"
	"google.golang.org/api/option"
)

const attributePrompt = `Analyze this clothing item. Return a strict JSON object with these keys:
- category: (tops, bottoms, shoes, outerwear, one_piece, accessory)
- sub_category: (e.g. Hoodie, Chinos, Chelsea Boots)
- primary_color: (string)
- secondary_color: (string or empty)
- pattern: (Solid, Striped, Floral, Logo, etc.)
- material: (e.g. Denim, Cotton, Leather, Knit)
- seasonality: (list from Summer, Winter, Spring, Fall, All-Season)
- formality: (Casual, Smart Casual, Formal, Lounge)
- fit: (Slim, Regular, Relaxed, Oversized)
- occasion: (list, e.g. Everyday, Office, Party)
- style_tags: (list of short style descriptors)
- layer_role: (Base, Mid, Outer, None)
- silhouette_volume: (Slim, Regular, Voluminous)
- pairing_bias: (number between 0 and 1)
- length_profile: (Cropped, Standard, Longline)
Respond with JSON only.`

const backgroundPrompt = `Isolate the single clothing item in this photo.
Remove the background completely, keep only the garment on a transparent
background, preserve its true colors and edges, and return the result as a
PNG image. Do not add, recolor or restyle anything.`

func newClient(ctx context.Context) (*genai.Client, error) {
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
}

// RemoveBackground sends the raw photo through the image model and returns
// the subject-isolated PNG bytes.
func RemoveBackground(ctx context.Context, imageData []byte) ([]byte, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	model := client.GenerativeModel(config.GeminiImageModel)
	resp, err := model.GenerateContent(ctx,
		genai.Text(backgroundPrompt),
		genai.ImageData("jpeg", imageData),
	)
	if err != nil {
		return nil, fmt.Errorf("background removal failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("background removal returned no content")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return blob.Data, nil
		}
	}
	return nil, fmt.Errorf("background removal returned no image part")
}

// ExtractAttributes asks the vision model for the attribute bag of a clean
// clothing image. The caller decides whether a failure is fatal or should
// fall back to models.DefaultAttributes.
func ExtractAttributes(ctx context.Context, imageData []byte) (models.Attributes, error) {
	var attrs models.Attributes

	client, err := newClient(ctx)
	if err != nil {
		return attrs, err
	}
	defer client.Close()

	model := client.GenerativeModel(config.GeminiVisionModel)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx,
		genai.Text(attributePrompt),
		genai.ImageData("png", imageData),
	)
	if err != nil {
		return attrs, fmt.Errorf("attribute extraction failed: %w", err)
	}

	raw := firstText(resp)
	if raw == "" {
		return attrs, fmt.Errorf("attribute extraction returned no text")
	}

	if err := json.Unmarshal([]byte(StripJSONFences(raw)), &attrs); err != nil {
		return attrs, fmt.Errorf("attribute extraction returned invalid JSON: %w", err)
	}

	attrs.Category = strings.ToLower(strings.TrimSpace(attrs.Category))
	if !models.IsValidCategory(attrs.Category) {
		return attrs, fmt.Errorf("attribute extraction returned unknown category %q", attrs.Category)
	}
	return attrs, nil
}

// EmbedText returns the embedding vector for a piece of text. Items embed
// their attribute summary; recommendation queries embed the raw scenario.
func EmbedText(ctx context.Context, text string) ([]float32, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	em := client.EmbeddingModel(config.GeminiEmbedModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding returned no values")
	}
	return res.Embedding.Values, nil
}

// ItemEmbeddingText flattens an attribute bag into the sentence that stands
// in for the item in vector space.
func ItemEmbeddingText(a models.Attributes) string {
	parts := []string{a.PrimaryColor, a.SubCategory}
	if a.Material != "" {
		parts = append(parts, "made of "+a.Material)
	}
	if a.Pattern != "" && a.Pattern != "Solid" {
		parts = append(parts, a.Pattern+" pattern")
	}
	if a.Formality != "" {
		parts = append(parts, a.Formality+" formality")
	}
	if len(a.StyleTags) > 0 {
		parts = append(parts, strings.Join(a.StyleTags, " "))
	}
	if len(a.Occasion) > 0 {
		parts = append(parts, "worn for "+strings.Join(a.Occasion, ", "))
	}
	return strings.Join(parts, ", ")
}

// StripJSONFences removes a markdown code fence around a JSON payload.
// Models sometimes wrap responses even when asked not to.
func StripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}
