package vision

import (
	"testing"

	"github.com/idealwardrobe/backend/models"
	"github.com/stretchr/testify/assert"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripJSONFences(tt.in))
		})
	}
}

func TestItemEmbeddingText(t *testing.T) {
	attrs := models.Attributes{
		SubCategory:  "Hoodie",
		PrimaryColor: "Grey",
		Pattern:      "Solid",
		Material:     "Fleece",
		Formality:    "Casual",
		StyleTags:    []string{"streetwear", "cozy"},
		Occasion:     []string{"Everyday"},
	}

	text := ItemEmbeddingText(attrs)
	assert.Contains(t, text, "Grey")
	assert.Contains(t, text, "Hoodie")
	assert.Contains(t, text, "made of Fleece")
	assert.Contains(t, text, "streetwear cozy")
	assert.Contains(t, text, "worn for Everyday")
	// Solid is the default pattern and adds no signal.
	assert.NotContains(t, text, "Solid")
}

func TestItemEmbeddingTextMinimal(t *testing.T) {
	attrs := models.Attributes{SubCategory: "Tee", PrimaryColor: "White"}
	assert.Equal(t, "White, Tee", ItemEmbeddingText(attrs))
}
