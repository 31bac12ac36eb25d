package planner

import "github.com/idealwardrobe/backend/models"

var intentFormality = map[StyleIntent]map[string]bool{
	CasualDay:   {"Casual": true, "Smart Casual": true},
	SmartCasual: {"Smart Casual": true, "Casual": true},
	FormalEvent: {"Formal": true, "Smart Casual": true},
	Street:      {"Casual": true},
	LayeredCold: {"Casual": true, "Smart Casual": true},
	Lounge:      {"Lounge": true, "Casual": true},
}

var intentColorMood = map[StyleIntent]map[string]bool{
	FormalEvent: {"Black": true, "Navy": true, "Charcoal": true, "Grey": true, "White": true, "Burgundy": true},
	SmartCasual: {"Navy": true, "Olive": true, "Beige": true, "Brown": true, "White": true, "Grey": true},
	CasualDay:   {"White": true, "Blue": true, "Grey": true, "Black": true, "Olive": true, "Tan": true},
	Street:      {"Black": true, "White": true, "Red": true, "Green": true, "Blue": true},
	Lounge:      {"Grey": true, "Beige": true, "Cream": true, "Brown": true},
	LayeredCold: {"Black": true, "Grey": true, "Navy": true, "Brown": true, "Olive": true},
}

// formalityBias nudges a candidate's score up when its formality matches the
// intent and gently down when it doesn't. Unknown formality is neutral.
func formalityBias(item *models.WardrobeItem, intent StyleIntent) float64 {
	f := item.Attributes.Formality
	if f == "" {
		return 1.0
	}
	preferred, ok := intentFormality[intent]
	if !ok {
		return 1.0
	}
	if preferred[f] {
		return 1.08
	}
	return 0.96
}

// colorMoodBias applies a weaker nudge for colors that suit the intent.
func colorMoodBias(item *models.WardrobeItem, intent StyleIntent) float64 {
	c := item.Attributes.PrimaryColor
	if c == "" {
		return 1.0
	}
	preferred, ok := intentColorMood[intent]
	if !ok {
		return 1.0
	}
	if preferred[c] {
		return 1.05
	}
	return 0.98
}
