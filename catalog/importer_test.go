package catalog

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseProductDocumentOpenGraph(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
		<meta property="og:title" content="Classic White Oxford Shirt">
		<meta property="og:image" content="https://cdn.example.com/shirt.jpg">
		<meta property="product:price:amount" content="49.90">
	</head><body><h1>ignored</h1></body></html>`)

	item := ParseProductDocument(doc, "tops")
	assert.Equal(t, "Classic White Oxford Shirt", item.Name)
	assert.Equal(t, "https://cdn.example.com/shirt.jpg", item.ImageURL)
	assert.Equal(t, "49.90", item.Price)
	assert.Equal(t, "tops", item.Category)
	assert.NotEmpty(t, item.ID)
}

func TestParseProductDocumentFallbacks(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
		<meta property="og:price:amount" content="19.00">
	</head><body>
		<h1>  Plain Black Tee  </h1>
		<img src="/images/tee.jpg">
	</body></html>`)

	item := ParseProductDocument(doc, "tops")
	assert.Equal(t, "Plain Black Tee", item.Name)
	assert.Equal(t, "/images/tee.jpg", item.ImageURL)
	assert.Equal(t, "19.00", item.Price)
}

func TestParseProductDocumentEmptyPage(t *testing.T) {
	doc := docFromHTML(t, `<html><body><p>nothing here</p></body></html>`)
	item := ParseProductDocument(doc, "shoes")
	assert.Empty(t, item.Name)
}
