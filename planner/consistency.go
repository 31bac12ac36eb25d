package planner

import (
	"math"
	"strings"

	"github.com/idealwardrobe/backend/models"
)

// Outfit maps slot names (stored category strings) to selected items.
type Outfit map[string]*models.WardrobeItem

// Confidence is the consistency score of a finished outfit with its
// per-dimension breakdown.
type Confidence struct {
	Score      float64            `json:"score"`
	Percentage int                `json:"percentage"`
	Breakdown  map[string]float64 `json:"breakdown"`
}

// Sub-categories that hard-fail the thermal checks.
var (
	hotBans  = []string{"puffer", "shearling", "heavy wool", "thermal", "glove", "scarf", "beanie"}
	coldBans = []string{"linen", "shorts", "sandal", "tank", "flip flop", "slide"}
)

var intentAllowedFormality = map[StyleIntent]map[string]bool{
	CasualDay:   {"Casual": true, "Smart Casual": true},
	SmartCasual: {"Smart Casual": true},
	FormalEvent: {"Formal": true},
	Street:      {"Casual": true},
	LayeredCold: {"Casual": true, "Smart Casual": true},
}

// seasonConsistency checks each item against temperature and rain. Items
// banned for the current temperature fail the whole dimension.
func seasonConsistency(outfit Outfit, w Weather) float64 {
	raining := w.IsPrecipitating()

	var scores []float64
	for _, item := range outfit {
		if item == nil {
			continue
		}
		sub := strings.ToLower(item.Attributes.SubCategory)

		if w.TempC > 18.0 && containsAny(sub, hotBans...) {
			return 0.0
		}
		if w.TempC < 10.0 && containsAny(sub, coldBans...) {
			return 0.0
		}

		if raining {
			switch {
			case containsAny(sub, "sandal", "slide", "flip flop", "suede"):
				return 0.2
			case item.Category == Outerwear.APIName():
				if containsAny(sub, "rain", "trench", "parka", "shell", "technical") {
					scores = append(scores, 1.0)
				} else {
					scores = append(scores, 0.5)
				}
				continue
			}
		}
		scores = append(scores, 1.0)
	}

	if len(scores) == 0 {
		return 0.0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// materialHarmony penalizes mixing heavy winter materials with airy summer
// ones in a single outfit.
func materialHarmony(outfit Outfit) float64 {
	winter := map[string]bool{"Wool": true, "Leather": true, "Fleece": true}
	summer := map[string]bool{"Linen": true, "Cotton": true}

	var hasWinter, hasSummer bool
	for _, item := range outfit {
		if item == nil {
			continue
		}
		m := item.Attributes.Material
		if winter[m] {
			hasWinter = true
		}
		if summer[m] {
			hasSummer = true
		}
	}
	if hasWinter && hasSummer {
		return 0.4
	}
	return 1.0
}

// redundancy penalizes repeated statement fabrics (double denim, double
// flannel) and exact duplicate sub-categories.
func redundancy(outfit Outfit) float64 {
	dangerPatterns := []string{"flannel", "denim", "leather", "corduroy", "linen", "plaid", "stripe"}

	seen := map[string]bool{}
	penalty := 0.0
	subs := map[string]int{}

	for _, item := range outfit {
		if item == nil {
			continue
		}
		name := strings.ToLower(item.Attributes.SubCategory)
		for _, pattern := range dangerPatterns {
			if strings.Contains(name, pattern) {
				if seen[pattern] {
					penalty += 0.4
				}
				seen[pattern] = true
			}
		}
		subs[item.Attributes.SubCategory]++
	}

	for _, n := range subs {
		if n > 1 {
			penalty += 0.2
			break
		}
	}

	if penalty > 1.0 {
		penalty = 1.0
	}
	return 1.0 - penalty
}

// intentAlignment is the fraction of items whose formality suits the intent.
func intentAlignment(outfit Outfit, intent StyleIntent) float64 {
	allowed, ok := intentAllowedFormality[intent]
	if !ok {
		return 0.5
	}

	total, matches := 0, 0
	for _, item := range outfit {
		if item == nil {
			continue
		}
		total++
		if allowed[item.Attributes.Formality] {
			matches++
		}
	}
	if total == 0 {
		return 0.0
	}
	return float64(matches) / float64(total)
}

// environmentSafety hard-fails combinations that don't survive the weather
// at all, like open shoes in rain.
func environmentSafety(outfit Outfit, w Weather) float64 {
	if !w.IsPrecipitating() {
		return 1.0
	}
	for _, item := range outfit {
		if item == nil {
			continue
		}
		if strings.Contains(strings.ToLower(item.Attributes.SubCategory), "sandal") {
			return 0.0
		}
	}
	return 1.0
}

// OutfitConsistency scores a finished outfit against the intent and weather.
func OutfitConsistency(outfit Outfit, intent StyleIntent, w Weather) Confidence {
	season := seasonConsistency(outfit, w)
	material := materialHarmony(outfit)
	redund := redundancy(outfit)
	intentScore := intentAlignment(outfit, intent)
	environment := environmentSafety(outfit, w)

	score := season*0.25 + material*0.20 + redund*0.20 + intentScore*0.20 + environment*0.15

	return Confidence{
		Score:      score,
		Percentage: int(math.Round(score * 100)),
		Breakdown: map[string]float64{
			"season":      season,
			"material":    material,
			"redundancy":  redund,
			"intent":      intentScore,
			"environment": environment,
		},
	}
}
