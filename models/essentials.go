package models

// EssentialItem is a global catalog entry the shopping engine can suggest
// when a wardrobe lacks a category. Not user-scoped.
type EssentialItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Color       string `json:"color"`
	Formality   string `json:"formality"`
	ImageURL    string `json:"image_url,omitempty"`
	ProductURL  string `json:"product_url,omitempty"`
	Price       string `json:"price,omitempty"`
}
