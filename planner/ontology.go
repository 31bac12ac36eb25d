// Package planner generates outfit recommendations from a user's wardrobe:
// an in-memory store with vector search, intent-driven outfit templates,
// and a consistency scorer that turns a candidate outfit into a confidence
// breakdown.
package planner

import "strings"

// Category is the planner-side clothing classification. Each value maps to
// one of the wardrobe's stored categories.
type Category string

const (
	Top       Category = "Top"
	Bottom    Category = "Bottom"
	Footwear  Category = "Footwear"
	Outerwear Category = "Outerwear"
	OnePiece  Category = "One-Piece"
	Accessory Category = "Accessory"
)

var categoryToAPI = map[Category]string{
	Top:       "tops",
	Bottom:    "bottoms",
	Footwear:  "shoes",
	Outerwear: "outerwear",
	OnePiece:  "one_piece",
	Accessory: "accessory",
}

var apiToCategory = map[string]Category{
	"tops":      Top,
	"bottoms":   Bottom,
	"shoes":     Footwear,
	"outerwear": Outerwear,
	"one_piece": OnePiece,
	"accessory": Accessory,
}

// APIName returns the stored category string for a planner category.
func (c Category) APIName() string { return categoryToAPI[c] }

// CategoryFromAPI maps a stored category string to the planner category.
func CategoryFromAPI(api string) (Category, bool) {
	c, ok := apiToCategory[api]
	return c, ok
}

// StyleIntent is the vibe a query resolves to; it drives formality and
// color biases during slot selection.
type StyleIntent string

const (
	CasualDay   StyleIntent = "Casual Day"
	SmartCasual StyleIntent = "Smart Casual"
	FormalEvent StyleIntent = "Formal Event"
	Street      StyleIntent = "Street"
	LayeredCold StyleIntent = "Layered Cold"
	Lounge      StyleIntent = "Lounge"
)

// TemplateSlot describes one position an outfit template wants filled.
type TemplateSlot struct {
	Category Category
	Required bool
	Max      int
}

// Template is a named outfit shape: which slots exist and what intent the
// whole outfit should express.
type Template struct {
	Name   string
	Intent StyleIntent
	Slots  []TemplateSlot
}

// OutfitTemplates are the outfit shapes the planner can fill.
var OutfitTemplates = map[string]Template{
	"basic": {
		Name:   "basic",
		Intent: CasualDay,
		Slots: []TemplateSlot{
			{Category: Top, Required: true, Max: 1},
			{Category: Bottom, Required: true, Max: 1},
			{Category: Footwear, Required: true, Max: 1},
			{Category: Accessory, Required: false, Max: 1},
		},
	},
	"smart_casual": {
		Name:   "smart_casual",
		Intent: SmartCasual,
		Slots: []TemplateSlot{
			{Category: Top, Required: true, Max: 1},
			{Category: Bottom, Required: true, Max: 1},
			{Category: Outerwear, Required: false, Max: 1},
			{Category: Footwear, Required: true, Max: 1},
			{Category: Accessory, Required: false, Max: 2},
		},
	},
	"formal": {
		Name:   "formal",
		Intent: FormalEvent,
		Slots: []TemplateSlot{
			{Category: Top, Required: true, Max: 1},
			{Category: Bottom, Required: true, Max: 1},
			{Category: Outerwear, Required: true, Max: 1},
			{Category: Footwear, Required: true, Max: 1},
			{Category: Accessory, Required: true, Max: 2},
		},
	},
	"layered": {
		Name:   "layered",
		Intent: LayeredCold,
		Slots: []TemplateSlot{
			{Category: Top, Required: true, Max: 1},
			{Category: Outerwear, Required: true, Max: 2},
			{Category: Bottom, Required: true, Max: 1},
			{Category: Footwear, Required: true, Max: 1},
			{Category: Accessory, Required: false, Max: 2},
		},
	},
	"one_piece": {
		Name:   "one_piece",
		Intent: FormalEvent,
		Slots: []TemplateSlot{
			{Category: OnePiece, Required: true, Max: 1},
			{Category: Footwear, Required: true, Max: 1},
			{Category: Accessory, Required: false, Max: 2},
		},
	},
}

// ChooseTemplate picks an outfit template from keywords in the scenario
// query. Anything unrecognized falls back to the basic template.
func ChooseTemplate(query string) Template {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "dress", "gown", "one piece", "one-piece"):
		return OutfitTemplates["one_piece"]
	case containsAny(q, "formal", "wedding", "interview", "ceremony", "black tie"):
		return OutfitTemplates["formal"]
	case containsAny(q, "winter", "cold", "snow", "freezing", "layer"):
		return OutfitTemplates["layered"]
	case containsAny(q, "office", "meeting", "smart", "dinner", "date"):
		return OutfitTemplates["smart_casual"]
	default:
		return OutfitTemplates["basic"]
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
