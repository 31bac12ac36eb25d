package planner

import (
	"fmt"

	"github.com/idealwardrobe/backend/models"
)

// ShoppingTip suggests an essentials-catalog purchase for the first required
// slot the wardrobe could not fill. Returns "" when the outfit is complete
// or the catalog offers nothing for the gap.
func ShoppingTip(outfit Outfit, tmpl Template, essentials []models.EssentialItem) string {
	for _, slot := range tmpl.Slots {
		if !slot.Required {
			continue
		}
		if outfit[slot.Category.APIName()] != nil {
			continue
		}

		if pick := pickEssential(essentials, slot.Category, tmpl.Intent); pick != nil {
			return fmt.Sprintf("Your wardrobe has no %s for this look, try adding a %s.",
				slot.Category.APIName(), pick.Name)
		}
		return fmt.Sprintf("Your wardrobe has no %s for this look.", slot.Category.APIName())
	}
	return ""
}

func pickEssential(essentials []models.EssentialItem, c Category, intent StyleIntent) *models.EssentialItem {
	preferred := intentFormality[intent]

	var fallback *models.EssentialItem
	for i := range essentials {
		e := &essentials[i]
		if e.Category != c.APIName() {
			continue
		}
		if fallback == nil {
			fallback = e
		}
		if preferred != nil && preferred[e.Formality] {
			return e
		}
	}
	return fallback
}
