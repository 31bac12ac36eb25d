package planner

import (
	"math"
	"sort"

	"github.com/idealwardrobe/backend/models"
)

// Store holds one user's wardrobe in memory for the duration of a planning
// request. Items without embeddings participate in category filters but not
// in vector search.
type Store struct {
	items []*models.WardrobeItem
}

// NewStore builds a store over the given items.
func NewStore(items []*models.WardrobeItem) *Store {
	s := &Store{items: make([]*models.WardrobeItem, 0, len(items))}
	s.items = append(s.items, items...)
	return s
}

// Len returns the number of items in the store.
func (s *Store) Len() int { return len(s.items) }

// ByCategory returns all items stored under the given planner category.
func (s *Store) ByCategory(c Category) []*models.WardrobeItem {
	var out []*models.WardrobeItem
	for _, item := range s.items {
		if item.Category == c.APIName() {
			out = append(out, item)
		}
	}
	return out
}

// HasEmbeddings reports whether at least one item carries a vector.
func (s *Store) HasEmbeddings() bool {
	for _, item := range s.items {
		if len(item.Embedding) > 0 {
			return true
		}
	}
	return false
}

// Scored pairs an item with its similarity to the query vector.
type Scored struct {
	Item  *models.WardrobeItem
	Score float64
}

// VectorSearch returns the topK items of a category most similar to the
// query vector, best first.
func (s *Store) VectorSearch(query []float32, topK int, filter Category) []Scored {
	var scored []Scored
	for _, item := range s.items {
		if len(item.Embedding) == 0 {
			continue
		}
		if filter != "" && item.Category != filter.APIName() {
			continue
		}
		sim, ok := cosineSimilarity(query, item.Embedding)
		if !ok {
			continue
		}
		scored = append(scored, Scored{Item: item, Score: sim})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}

func cosineSimilarity(a, b []float32) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}
