package destinations

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelshowcase/internal/clock"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h := NewHandler(newLoadedService(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.clock = clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func getDocument(t *testing.T, router http.Handler, target string) *goquery.Document {
	t.Helper()

	rec := get(t, router, target)
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func cardTitles(doc *goquery.Document) []string {
	var titles []string
	doc.Find("article.card .card-title").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	return titles
}

func TestHomePage(t *testing.T) {
	doc := getDocument(t, newTestRouter(t), "/")

	assert.Equal(t, 6, doc.Find("article.card").Length())
	assert.Equal(t, 1, doc.Find("button.load-more").Length())
	assert.Equal(t, 0, doc.Find(".no-results").Length())

	vals, _ := doc.Find("button.load-more").Attr("hx-vals")
	assert.JSONEq(t, `{"visible": 9}`, vals)

	trigger, _ := doc.Find(`input[name="q"]`).Attr("hx-trigger")
	assert.Contains(t, trigger, "delay:220ms")

	pressed := doc.Find(`.category-button[aria-pressed="true"]`)
	require.Equal(t, 1, pressed.Length())
	assert.Equal(t, "All", pressed.Text())
	assert.Equal(t, 4, doc.Find(".category-button").Length())

	selected, _ := doc.Find(`select[name="sort"] option[selected]`).Attr("value")
	assert.Equal(t, "relevance", selected)

	first := doc.Find("article.card").First()
	assert.Equal(t, "08:00", first.Find(".card-local-time").Text())
	assert.Equal(t, 1, first.Find(".card-description strong").Length())
}

func TestDestinationsFragment(t *testing.T) {
	router := newTestRouter(t)

	t.Run("filter and sort", func(t *testing.T) {
		doc := getDocument(t, router, "/fragments/destinations?filter=beach&sort=name-desc")

		assert.Equal(t, []string{
			"Maldives",
			"Copacabana, Brazil",
			"Bora Bora, French Polynesia",
			"Bali, Indonesia",
		}, cardTitles(doc))
		assert.Equal(t, 0, doc.Find("button.load-more").Length())

		bar := doc.Find("#category-bar")
		oob, _ := bar.Attr("hx-swap-oob")
		assert.Equal(t, "true", oob)
		filter, _ := bar.Find(`input[name="filter"]`).Attr("value")
		assert.Equal(t, "beach", filter)
		assert.Equal(t, "Beach", bar.Find(`[aria-pressed="true"]`).Text())
	})

	t.Run("load more", func(t *testing.T) {
		doc := getDocument(t, router, "/fragments/destinations?visible=9")

		assert.Equal(t, 9, doc.Find("article.card").Length())
		vals, _ := doc.Find("button.load-more").Attr("hx-vals")
		assert.JSONEq(t, `{"visible": 12}`, vals)
	})

	t.Run("no match", func(t *testing.T) {
		doc := getDocument(t, router, "/fragments/destinations?q=atlantis")

		assert.Equal(t, 0, doc.Find("article.card").Length())
		assert.Equal(t, 1, doc.Find(".no-results").Length())
		assert.Equal(t, 0, doc.Find("button.load-more").Length())
	})
}

func TestListDestinationsAPI(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/destinations?filter=temple&sort=time-asc")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Filter       string `json:"filter"`
		Sort         string `json:"sort"`
		Matched      int    `json:"matched"`
		Hidden       []int  `json:"hidden"`
		Destinations []struct {
			Index           int    `json:"index"`
			Title           string `json:"title"`
			ScheduleMinutes *int   `json:"scheduleMinutes"`
		} `json:"destinations"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "temple", body.Filter)
	assert.Equal(t, "time-asc", body.Sort)
	assert.Equal(t, 4, body.Matched)
	assert.Len(t, body.Hidden, 8)

	require.Len(t, body.Destinations, 4)
	// Kyoto 120, Angkor 330, Golden Temple 1125, Shwedagon unknown.
	assert.Equal(t, []int{9, 2, 7, 3}, []int{
		body.Destinations[0].Index,
		body.Destinations[1].Index,
		body.Destinations[2].Index,
		body.Destinations[3].Index,
	})
	assert.Nil(t, body.Destinations[3].ScheduleMinutes)
	require.NotNil(t, body.Destinations[0].ScheduleMinutes)
	assert.Equal(t, 120, *body.Destinations[0].ScheduleMinutes)
}

func TestGetDestinationAPI(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/destinations/1")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Maldives", body["title"])
	assert.Equal(t, "05:00", body["localTime"])

	rec = get(t, router, "/api/destinations/42")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "destination not found")

	rec = get(t, router, "/api/destinations/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoriesAPI(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 3)
	assert.Equal(t, Category{Name: "beach", Label: "Beach", Count: 4}, body[0])
}

func TestScheduleAPI(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		value string
		want  string
	}{
		{"2h 30m", `{"raw":"2h 30m","minutes":150,"known":true}`},
		{"14:30", `{"raw":"14:30","minutes":870,"known":true}`},
		{"soon", `{"raw":"soon","minutes":0,"known":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rec := get(t, router, "/api/schedule?value="+strings.ReplaceAll(tt.value, " ", "+"))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
