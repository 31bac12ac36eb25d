package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/idealwardrobe/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCatalog(t *testing.T) {
	t.Helper()
	mu.Lock()
	old := essentials
	essentials = nil
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		essentials = old
		mu.Unlock()
	})
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	resetCatalog(t)

	Add(models.EssentialItem{ID: "1", Name: "White Tee", Category: "tops"})
	Add(models.EssentialItem{ID: "2", Name: "Black Loafers", Category: "shoes"})
	require.Equal(t, 2, Count())

	path := filepath.Join(t.TempDir(), "essentials.json")
	require.NoError(t, Save(path))

	resetCatalog(t)
	require.Equal(t, 0, Count())

	Load(path)
	items := Items()
	require.Len(t, items, 2)
	assert.Equal(t, "White Tee", items[0].Name)
}

func TestLoadMissingFileLeavesCatalogEmpty(t *testing.T) {
	resetCatalog(t)
	Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Equal(t, 0, Count())
}

func TestItemsReturnsCopy(t *testing.T) {
	resetCatalog(t)
	Add(models.EssentialItem{ID: "1", Name: "White Tee", Category: "tops"})

	items := Items()
	items[0].Name = "mutated"
	assert.Equal(t, "White Tee", Items()[0].Name)
}

func TestImportProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<meta property="og:title" content="Navy Chinos">
			<meta property="og:image" content="https://cdn.example.com/chinos.jpg">
		</head></html>`))
	}))
	defer srv.Close()

	item, err := ImportProduct(context.Background(), srv.URL+"/p/navy-chinos", "bottoms")
	require.NoError(t, err)
	assert.Equal(t, "Navy Chinos", item.Name)
	assert.Equal(t, "bottoms", item.Category)
	assert.Equal(t, srv.URL+"/p/navy-chinos", item.ProductURL)
}

func TestImportProductInvalidCategory(t *testing.T) {
	_, err := ImportProduct(context.Background(), "http://localhost/x", "hats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}
