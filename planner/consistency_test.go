package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeasonConsistencyThermalBans(t *testing.T) {
	hot := Weather{TempC: 25, Condition: "clear"}
	cold := Weather{TempC: 5, Condition: "clear"}

	puffer := Outfit{"outerwear": testItem("outerwear", "Puffer Jacket", "Black", "Casual", nil)}
	assert.Equal(t, 0.0, seasonConsistency(puffer, hot))
	assert.Equal(t, 1.0, seasonConsistency(puffer, cold))

	shorts := Outfit{"bottoms": testItem("bottoms", "Linen Shorts", "Beige", "Casual", nil)}
	assert.Equal(t, 0.0, seasonConsistency(shorts, cold))
	assert.Equal(t, 1.0, seasonConsistency(shorts, hot))
}

func TestSeasonConsistencyRain(t *testing.T) {
	rain := Weather{TempC: 15, Condition: "rain"}

	sandals := Outfit{"shoes": testItem("shoes", "Leather Sandals", "Brown", "Casual", nil)}
	assert.Equal(t, 0.2, seasonConsistency(sandals, rain))

	trench := Outfit{"outerwear": testItem("outerwear", "Trench Coat", "Beige", "Smart Casual", nil)}
	assert.Equal(t, 1.0, seasonConsistency(trench, rain))

	blazer := Outfit{"outerwear": testItem("outerwear", "Wool Blazer", "Grey", "Formal", nil)}
	assert.Equal(t, 0.5, seasonConsistency(blazer, rain))
}

func TestMaterialHarmony(t *testing.T) {
	linenShirt := testItem("tops", "Shirt", "White", "Casual", nil)
	linenShirt.Attributes.Material = "Linen"
	woolTrousers := testItem("bottoms", "Trousers", "Grey", "Formal", nil)
	woolTrousers.Attributes.Material = "Wool"

	mixed := Outfit{"tops": linenShirt, "bottoms": woolTrousers}
	assert.Equal(t, 0.4, materialHarmony(mixed))

	consistent := Outfit{
		"tops":    testItem("tops", "Tee", "White", "Casual", nil),
		"bottoms": testItem("bottoms", "Chinos", "Beige", "Casual", nil),
	}
	assert.Equal(t, 1.0, materialHarmony(consistent))
}

func TestRedundancy(t *testing.T) {
	doubleDenim := Outfit{
		"tops":    testItem("tops", "Denim Jacket", "Blue", "Casual", nil),
		"bottoms": testItem("bottoms", "Denim Jeans", "Blue", "Casual", nil),
	}
	assert.InDelta(t, 0.6, redundancy(doubleDenim), 1e-9)

	clean := Outfit{
		"tops":    testItem("tops", "Oxford Shirt", "White", "Smart Casual", nil),
		"bottoms": testItem("bottoms", "Chinos", "Beige", "Smart Casual", nil),
	}
	assert.Equal(t, 1.0, redundancy(clean))
}

func TestIntentAlignment(t *testing.T) {
	outfit := Outfit{
		"tops":    testItem("tops", "Dress Shirt", "White", "Formal", nil),
		"bottoms": testItem("bottoms", "Jeans", "Blue", "Casual", nil),
	}
	assert.Equal(t, 0.5, intentAlignment(outfit, FormalEvent))
	assert.Equal(t, 0.5, intentAlignment(outfit, Street))
}

func TestEnvironmentSafety(t *testing.T) {
	sandals := Outfit{"shoes": testItem("shoes", "Sandals", "Brown", "Casual", nil)}
	assert.Equal(t, 0.0, environmentSafety(sandals, Weather{TempC: 15, Condition: "rain"}))
	assert.Equal(t, 1.0, environmentSafety(sandals, Weather{TempC: 25, Condition: "clear"}))
}

func TestOutfitConsistencyScoreAndPercentage(t *testing.T) {
	outfit := Outfit{
		"tops":    testItem("tops", "Oxford Shirt", "White", "Casual", nil),
		"bottoms": testItem("bottoms", "Chinos", "Beige", "Casual", nil),
		"shoes":   testItem("shoes", "Sneakers", "White", "Casual", nil),
	}

	c := OutfitConsistency(outfit, CasualDay, Weather{TempC: 20, Condition: "clear"})
	assert.InDelta(t, 1.0, c.Score, 1e-9)
	assert.Equal(t, 100, c.Percentage)
	assert.Len(t, c.Breakdown, 5)
}
