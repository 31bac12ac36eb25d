package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/idealwardrobe/backend/models"
)

// Synthetic view categories rendered alongside the concrete wardrobe ones.
const (
	ViewAll          = "All"
	ViewSavedOutfits = "Saved Outfits"
)

// WardrobeView is the client-side state behind the wardrobe screen: the
// selected category tab and the items or outfits currently shown. Local
// state only changes after the server confirms an operation.
type WardrobeView struct {
	client *Client

	Selected string
	Items    []*models.WardrobeItem
	Outfits  []models.EnrichedOutfit
	Err      error
}

// NewWardrobeView returns a view over the given client, starting on All.
func NewWardrobeView(c *Client) *WardrobeView {
	return &WardrobeView{client: c, Selected: ViewAll}
}

// SelectCategory switches the view to a tab and reloads it.
func (v *WardrobeView) SelectCategory(ctx context.Context, category string) error {
	v.Selected = category
	return v.Reload(ctx)
}

// Reload fetches the selected tab's content from the server. The shown list
// is replaced only on success; on failure the view empties and the error is
// surfaced on the view. The All tab issues one fetch per concrete category,
// each awaited in turn. An empty wardrobe or outfit list is not an error.
func (v *WardrobeView) Reload(ctx context.Context) error {
	v.Err = nil

	switch v.Selected {
	case ViewSavedOutfits:
		outfits, err := v.client.SavedOutfits(ctx)
		if err != nil {
			v.Items, v.Outfits = nil, nil
			v.Err = err
			return err
		}
		v.Items = nil
		v.Outfits = outfits
		return nil

	case ViewAll:
		// Every category is fetched and awaited even when one fails; the
		// errors are aggregated afterwards.
		var all []*models.WardrobeItem
		var errs []error
		for _, category := range models.Categories {
			items, err := v.client.Wardrobe(ctx, category)
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to load %s: %w", category, err))
				continue
			}
			for i := range items {
				all = append(all, &items[i])
			}
		}
		if len(errs) > 0 {
			v.Items, v.Outfits = nil, nil
			v.Err = errors.Join(errs...)
			return v.Err
		}
		v.Outfits = nil
		v.Items = all
		return nil

	default:
		items, err := v.client.Wardrobe(ctx, v.Selected)
		if err != nil {
			v.Items, v.Outfits = nil, nil
			v.Err = err
			return err
		}
		loaded := make([]*models.WardrobeItem, 0, len(items))
		for i := range items {
			loaded = append(loaded, &items[i])
		}
		v.Outfits = nil
		v.Items = loaded
		return nil
	}
}

// DeleteItem asks the server to delete an item and, once confirmed, removes
// exactly that entry from the shown list.
func (v *WardrobeView) DeleteItem(ctx context.Context, id string) error {
	if err := v.client.DeleteItem(ctx, id); err != nil {
		return err
	}
	for i, item := range v.Items {
		if item.ID.Hex() == id {
			v.Items = append(v.Items[:i], v.Items[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteOutfit asks the server to delete a saved outfit and, once confirmed,
// removes exactly that entry from the shown list.
func (v *WardrobeView) DeleteOutfit(ctx context.Context, id string) error {
	if err := v.client.DeleteOutfit(ctx, id); err != nil {
		return err
	}
	for i, o := range v.Outfits {
		if o.ID.Hex() == id {
			v.Outfits = append(v.Outfits[:i], v.Outfits[i+1:]...)
			break
		}
	}
	return nil
}

// prepend puts a freshly uploaded item at the top of the list when the
// current tab shows its category.
func (v *WardrobeView) prepend(item *models.WardrobeItem) {
	if v.Selected != ViewAll && v.Selected != item.Category {
		return
	}
	v.Items = append([]*models.WardrobeItem{item}, v.Items...)
}
