package planner

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/idealwardrobe/backend/models"
)

// EmbedFunc converts a scenario query into the same vector space the items
// were embedded in. Injected so tests don't hit the model API.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// Planner fills outfit templates from a user's wardrobe. Essentials is read
// on every plan so catalog imports show up in shopping tips without a
// restart.
type Planner struct {
	Embed      EmbedFunc
	Essentials func() []models.EssentialItem
}

// Result is one recommendation: the chosen items per slot plus everything
// the frontend renders around them.
type Result struct {
	Outfit      Outfit     `json:"outfit"`
	Template    string     `json:"template"`
	Method      string     `json:"method"`
	Weather     Weather    `json:"weather"`
	Confidence  Confidence `json:"confidence"`
	ShoppingTip string     `json:"shopping_tip,omitempty"`
}

// Plan recommends an outfit for the query from the given items. manual, when
// non-empty, overrides the live weather condition.
func (p *Planner) Plan(ctx context.Context, query string, items []*models.WardrobeItem, manual string) (*Result, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items found in wardrobe")
	}

	weather, err := FetchWeather(ctx)
	if err != nil {
		log.Printf("Weather lookup failed, using default: %v", err)
	}
	if manual != "" {
		weather.Condition = manual
	}

	tmpl := ChooseTemplate(query)
	store := NewStore(items)

	outfit, method := p.vectorPlan(ctx, query, tmpl, store)
	if outfit == nil {
		outfit = ruleBasedOutfit(items)
		method = "rule-based-fallback"
	}
	if filledSlots(outfit) == 0 {
		// Last resort: any wardrobe with items yields an outfit, however
		// sparse, with the unfillable required slots left null.
		outfit = firstAvailableOutfit(items, tmpl)
		method = "first-available"
	}

	var essentials []models.EssentialItem
	if p.Essentials != nil {
		essentials = p.Essentials()
	}

	return &Result{
		Outfit:      outfit,
		Template:    tmpl.Name,
		Method:      method,
		Weather:     weather,
		Confidence:  OutfitConsistency(outfit, tmpl.Intent, weather),
		ShoppingTip: ShoppingTip(outfit, tmpl, essentials),
	}, nil
}

// vectorPlan fills each template slot with the best embedding match, biased
// by intent. Returns nil when vector search is not possible.
func (p *Planner) vectorPlan(ctx context.Context, query string, tmpl Template, store *Store) (Outfit, string) {
	if p.Embed == nil || !store.HasEmbeddings() {
		return nil, ""
	}

	queryVec, err := p.Embed(ctx, query)
	if err != nil {
		log.Printf("Query embedding failed, falling back: %v", err)
		return nil, ""
	}

	outfit := Outfit{}
	filled := 0
	for _, slot := range tmpl.Slots {
		candidates := store.VectorSearch(queryVec, 3, slot.Category)
		if len(candidates) == 0 {
			if slot.Required {
				outfit[slot.Category.APIName()] = nil
			}
			continue
		}

		best := candidates[0]
		bestScore := best.Score * formalityBias(best.Item, tmpl.Intent) * colorMoodBias(best.Item, tmpl.Intent)
		for _, c := range candidates[1:] {
			score := c.Score * formalityBias(c.Item, tmpl.Intent) * colorMoodBias(c.Item, tmpl.Intent)
			if score > bestScore {
				best, bestScore = c, score
			}
		}

		outfit[slot.Category.APIName()] = best.Item
		filled++
	}

	if filled == 0 {
		return nil, ""
	}
	return outfit, "vector-planner"
}

func filledSlots(outfit Outfit) int {
	n := 0
	for _, item := range outfit {
		if item != nil {
			n++
		}
	}
	return n
}

// firstAvailableOutfit takes the first item of each template slot's
// category, no scoring at all. Required slots with an empty category stay
// null. When nothing in the wardrobe matches the template, the first item
// overall is surfaced under its own category.
func firstAvailableOutfit(items []*models.WardrobeItem, tmpl Template) Outfit {
	outfit := Outfit{}
	for _, slot := range tmpl.Slots {
		name := slot.Category.APIName()
		for _, item := range items {
			if item.Category == name {
				outfit[name] = item
				break
			}
		}
		if outfit[name] == nil && slot.Required {
			outfit[name] = nil
		}
	}

	if filledSlots(outfit) == 0 && len(items) > 0 {
		outfit[items[0].Category] = items[0]
	}
	return outfit
}

var neutralColors = []string{"black", "white", "grey", "gray", "beige", "brown", "navy", "khaki"}

// simpleColorScore is the embedding-free color harmony heuristic: neutrals
// pair with everything, identical colors are safe, clashes score low.
func simpleColorScore(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	aNeutral := containsAny(a, neutralColors...)
	bNeutral := containsAny(b, neutralColors...)

	switch {
	case aNeutral && bNeutral:
		return 0.8
	case aNeutral || bNeutral:
		return 0.6
	case a == b:
		return 0.7
	default:
		return 0.3
	}
}

var formalityOrder = map[string]int{
	"Formal":       3,
	"Smart Casual": 2,
	"Smart-Casual": 2,
	"Casual":       1,
	"Lounge":       0,
}

// ruleBasedOutfit is the no-embeddings fallback: most formal top, the bottom
// with the best color harmony against it, neutral shoes.
func ruleBasedOutfit(items []*models.WardrobeItem) Outfit {
	outfit := Outfit{}
	byCategory := func(c string) []*models.WardrobeItem {
		var out []*models.WardrobeItem
		for _, item := range items {
			if item.Category == c {
				out = append(out, item)
			}
		}
		return out
	}

	tops := byCategory("tops")
	if len(tops) > 0 {
		sort.SliceStable(tops, func(i, j int) bool {
			return formalityOrder[tops[i].Attributes.Formality] > formalityOrder[tops[j].Attributes.Formality]
		})
		outfit["tops"] = tops[0]
	}

	bottoms := byCategory("bottoms")
	if len(bottoms) > 0 {
		pick := bottoms[0]
		if top := outfit["tops"]; top != nil {
			bestScore := -1.0
			for _, b := range bottoms {
				score := simpleColorScore(top.Attributes.PrimaryColor, b.Attributes.PrimaryColor)
				if score > bestScore {
					pick, bestScore = b, score
				}
			}
		}
		outfit["bottoms"] = pick
	}

	shoes := byCategory("shoes")
	if len(shoes) > 0 {
		pick := shoes[0]
		for _, s := range shoes {
			if containsAny(strings.ToLower(s.Attributes.PrimaryColor), neutralColors...) {
				pick = s
				break
			}
		}
		outfit["shoes"] = pick
	}

	return outfit
}
