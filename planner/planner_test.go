package planner

import (
	"context"
	"testing"

	"github.com/idealwardrobe/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testItem(category, subCategory, color, formality string, embedding []float32) *models.WardrobeItem {
	return &models.WardrobeItem{
		ID:       primitive.NewObjectID(),
		UserID:   "u1",
		Category: category,
		Attributes: models.Attributes{
			Category:     category,
			SubCategory:  subCategory,
			PrimaryColor: color,
			Pattern:      "Solid",
			Material:     "Cotton",
			Seasonality:  []string{"All-Season"},
			Formality:    formality,
		},
		Embedding: embedding,
	}
}

func TestChooseTemplate(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"a summer dress for brunch", "one_piece"},
		{"wedding guest", "formal"},
		{"job interview on monday", "formal"},
		{"freezing cold morning walk", "layered"},
		{"dinner date tonight", "smart_casual"},
		{"office meeting", "smart_casual"},
		{"errands around town", "basic"},
		{"", "basic"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseTemplate(tt.query).Name)
		})
	}
}

func TestPlanEmptyWardrobe(t *testing.T) {
	p := &Planner{}
	_, err := p.Plan(context.Background(), "anything", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no items")
}

func TestPlanRuleBasedFallback(t *testing.T) {
	stubWeather(t, 20, 0)

	// No embeddings anywhere, so the planner must fall back.
	items := []*models.WardrobeItem{
		testItem("tops", "Oxford Shirt", "White", "Smart Casual", nil),
		testItem("tops", "Graphic Tee", "Red", "Casual", nil),
		testItem("bottoms", "Chinos", "Beige", "Smart Casual", nil),
		testItem("shoes", "White Sneakers", "White", "Casual", nil),
	}

	p := &Planner{}
	result, err := p.Plan(context.Background(), "errands", items, "clear")
	require.NoError(t, err)

	assert.Equal(t, "rule-based-fallback", result.Method)
	require.NotNil(t, result.Outfit["tops"])
	assert.Equal(t, "Oxford Shirt", result.Outfit["tops"].Attributes.SubCategory)
	require.NotNil(t, result.Outfit["shoes"])
	assert.Equal(t, "White Sneakers", result.Outfit["shoes"].Attributes.SubCategory)
}

func TestPlanVectorPath(t *testing.T) {
	stubWeather(t, 20, 0)

	items := []*models.WardrobeItem{
		testItem("tops", "Hoodie", "Grey", "Casual", []float32{1, 0, 0}),
		testItem("tops", "Dress Shirt", "White", "Formal", []float32{0, 1, 0}),
		testItem("bottoms", "Jeans", "Blue", "Casual", []float32{0.9, 0.1, 0}),
		testItem("shoes", "Sneakers", "White", "Casual", []float32{0.8, 0, 0.2}),
	}

	p := &Planner{
		Embed: func(ctx context.Context, text string) ([]float32, error) {
			return []float32{1, 0, 0}, nil
		},
	}
	result, err := p.Plan(context.Background(), "errands around town", items, "clear")
	require.NoError(t, err)

	assert.Equal(t, "vector-planner", result.Method)
	require.NotNil(t, result.Outfit["tops"])
	assert.Equal(t, "Hoodie", result.Outfit["tops"].Attributes.SubCategory)
	require.NotNil(t, result.Outfit["bottoms"])
	assert.Equal(t, "Jeans", result.Outfit["bottoms"].Attributes.SubCategory)
	assert.Equal(t, "basic", result.Template)
	assert.Greater(t, result.Confidence.Score, 0.0)
}

func TestPlanManualWeatherOverride(t *testing.T) {
	stubWeather(t, 20, 0)

	items := []*models.WardrobeItem{
		testItem("tops", "Tee", "White", "Casual", nil),
		testItem("bottoms", "Jeans", "Blue", "Casual", nil),
		testItem("shoes", "Sneakers", "White", "Casual", nil),
	}

	p := &Planner{}
	result, err := p.Plan(context.Background(), "errands", items, "rain")
	require.NoError(t, err)
	assert.Equal(t, "rain", result.Weather.Condition)
}

func TestPlanFirstAvailableTier(t *testing.T) {
	stubWeather(t, 20, 0)

	// Nothing the scorers can work with: no tops, bottoms or shoes.
	belt := testItem("accessory", "Leather Belt", "Black", "Casual", nil)

	p := &Planner{}
	result, err := p.Plan(context.Background(), "errands", []*models.WardrobeItem{belt}, "")
	require.NoError(t, err)

	assert.Equal(t, "first-available", result.Method)
	require.NotNil(t, result.Outfit["accessory"])
	assert.Equal(t, "Leather Belt", result.Outfit["accessory"].Attributes.SubCategory)

	// Required slots the wardrobe cannot fill are present but null.
	for _, slot := range []string{"tops", "bottoms", "shoes"} {
		got, ok := result.Outfit[slot]
		assert.True(t, ok, slot)
		assert.Nil(t, got, slot)
	}
}

func TestFirstAvailableOutfitOffTemplateWardrobe(t *testing.T) {
	// Only outerwear, which the basic template has no slot for.
	coat := testItem("outerwear", "Parka", "Green", "Casual", nil)

	outfit := firstAvailableOutfit([]*models.WardrobeItem{coat}, OutfitTemplates["basic"])
	require.NotNil(t, outfit["outerwear"])
	assert.Equal(t, "Parka", outfit["outerwear"].Attributes.SubCategory)
}

func TestPlanShoppingTipSeesCatalogUpdates(t *testing.T) {
	stubWeather(t, 20, 0)

	// Basic template with no shoes in the wardrobe.
	items := []*models.WardrobeItem{
		testItem("tops", "Tee", "White", "Casual", nil),
		testItem("bottoms", "Jeans", "Blue", "Casual", nil),
	}

	var essentials []models.EssentialItem
	p := &Planner{Essentials: func() []models.EssentialItem { return essentials }}

	result, err := p.Plan(context.Background(), "errands", items, "")
	require.NoError(t, err)
	assert.Contains(t, result.ShoppingTip, "shoes")
	assert.NotContains(t, result.ShoppingTip, "White Leather Sneakers")

	// A catalog import between plans shows up in the next tip.
	essentials = append(essentials, models.EssentialItem{
		Name: "White Leather Sneakers", Category: "shoes", Formality: "Casual",
	})

	result, err = p.Plan(context.Background(), "errands", items, "")
	require.NoError(t, err)
	assert.Contains(t, result.ShoppingTip, "White Leather Sneakers")
}

func TestSimpleColorScore(t *testing.T) {
	assert.Equal(t, 0.8, simpleColorScore("Black", "White"))
	assert.Equal(t, 0.6, simpleColorScore("Black", "Red"))
	assert.Equal(t, 0.7, simpleColorScore("Red", "Red"))
	assert.Equal(t, 0.3, simpleColorScore("Red", "Green"))
}

func TestRuleBasedOutfitPrefersNeutralShoes(t *testing.T) {
	items := []*models.WardrobeItem{
		testItem("shoes", "Red Runners", "Red", "Casual", nil),
		testItem("shoes", "Black Loafers", "Black", "Smart Casual", nil),
	}

	outfit := ruleBasedOutfit(items)
	require.NotNil(t, outfit["shoes"])
	assert.Equal(t, "Black Loafers", outfit["shoes"].Attributes.SubCategory)
}
