package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("Tops"))
	assert.False(t, IsValidCategory("hats"))
	assert.False(t, IsValidCategory(""))
}

func TestDefaultAttributes(t *testing.T) {
	attrs := DefaultAttributes("bottoms")
	assert.Equal(t, "bottoms", attrs.Category)
	assert.Equal(t, "Casual", attrs.Formality)
	assert.Equal(t, []string{"All-Season"}, attrs.Seasonality)
}

func TestSavedOutfitSlots(t *testing.T) {
	var o SavedOutfit
	for _, slot := range Slots {
		assert.Empty(t, o.SlotID(slot))
		o.SetSlotID(slot, "id-"+slot)
		assert.Equal(t, "id-"+slot, o.SlotID(slot))
	}
	assert.Empty(t, o.SlotID("hats"))
}
