package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelshowcase/views/models"
)

func TestHomePage(t *testing.T) {
	var buf bytes.Buffer
	err := HomePage(models.PageView{
		Title: "Explore <destinations>",
		Grid: models.GridView{
			Destinations: []models.DestinationView{{Title: "Bali"}},
		},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "Explore <destinations>", doc.Find("title").Text())
	assert.Equal(t, "Explore <destinations>", doc.Find("header h1").Text())

	css, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "/static/app.css", css)
	src, _ := doc.Find("script").Attr("src")
	assert.Contains(t, src, "htmx.org")

	assert.Equal(t, 1, doc.Find("main form#controls").Length())
	assert.Equal(t, 1, doc.Find("main #destination-grid article.card").Length())
}
