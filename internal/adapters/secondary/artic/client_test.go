package artic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"artwork-search-service/internal/config"
	"artwork-search-service/internal/core/domain"
	ports "artwork-search-service/internal/core/ports/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSearchJSON = `{
  "pagination": {"total": 2, "limit": 10, "offset": 0},
  "data": [
    {"_score": 120.5, "id": 27992, "title": "A Sunday on La Grande Jatte - 1884", "artist_title": "Georges Seurat", "image_id": "1adf2696-8489-499b-cad2-821d7fde4b33"},
    {"_score": 98.1, "id": 14598, "title": null, "artist_title": null, "image_id": null}
  ]
}`

const sampleDetailJSON = `{
  "data": {
    "id": 129884,
    "title": "Starry Night and the Astronauts",
    "artist_title": "Alma Thomas",
    "image_id": "e966799b-97ee-1cc6-bd2f-a94b4b8bb8f9",
    "date_display": "1972",
    "medium_display": "Acrylic on canvas",
    "credit_line": "Purchased with funds provided by Mary P. Hines",
    "place_of_origin": "United States",
    "gallery_title": null
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) ports.CatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewCatalogClient(&config.CatalogConfig{
		APIURL:    srv.URL + "/api/v1/artworks",
		Timeout:   2 * time.Second,
		UserAgent: "artwork-search-test",
	})
}

func TestSearchURL(t *testing.T) {
	raw := SearchURL("https://api.artic.edu/api/v1/artworks/", ports.SearchQuery{Text: "cats & dogs", Limit: 10})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/artworks/search", u.Path)

	q := u.Query()
	assert.Equal(t, "cats & dogs", q.Get("q"))
	assert.Equal(t, "true", q.Get("query[term][is_public_domain]"))
	assert.Equal(t, "id,title,image_id,artist_title", q.Get("fields"))
	assert.Equal(t, "10", q.Get("limit"))
}

func TestDetailURL(t *testing.T) {
	assert.Equal(t, "https://api.artic.edu/api/v1/artworks/129884", DetailURL("https://api.artic.edu/api/v1/artworks", 129884))
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/artworks/search", r.URL.Path)
		assert.Equal(t, "seurat", r.URL.Query().Get("q"))
		assert.Equal(t, "artwork-search-test", r.Header.Get("AIC-User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleSearchJSON))
	})

	artworks, err := client.Search(context.Background(), ports.SearchQuery{Text: "seurat", Limit: 10})
	require.NoError(t, err)
	require.Len(t, artworks, 2)

	assert.Equal(t, int64(27992), artworks[0].ID)
	assert.Equal(t, "Georges Seurat", artworks[0].ArtistTitle)
	assert.True(t, artworks[0].HasImage())

	assert.Equal(t, int64(14598), artworks[1].ID)
	assert.Empty(t, artworks[1].Title)
	assert.False(t, artworks[1].HasImage())
}

func TestSearch_EmptyData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	artworks, err := client.Search(context.Background(), ports.SearchQuery{Text: "zzzz", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, artworks)
}

func TestSearch_MissingData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": 403, "error": "Forbidden"}`))
	})

	artworks, err := client.Search(context.Background(), ports.SearchQuery{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, artworks)
}

func TestSearch_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), ports.SearchQuery{Limit: 10})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestSearch_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	})

	_, err := client.Search(context.Background(), ports.SearchQuery{Limit: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidCatalogResponse)
}

func TestSearch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewCatalogClient(&config.CatalogConfig{APIURL: srv.URL, Timeout: time.Second})
	_, err := client.Search(context.Background(), ports.SearchQuery{Limit: 10})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestGetArtwork(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api/v1/artworks/129884", r.URL.Path)
		_, _ = w.Write([]byte(sampleDetailJSON))
	})

	artwork, err := client.GetArtwork(context.Background(), 129884)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "Starry Night and the Astronauts", artwork.Title)
	assert.Equal(t, "Alma Thomas", artwork.ArtistTitle)
	assert.Equal(t, "1972", artwork.DateDisplay)
	assert.Equal(t, "United States", artwork.PlaceOfOrigin)
	assert.Empty(t, artwork.GalleryTitle)
}

func TestGetArtwork_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status": 404, "error": "Not found"}`))
	})

	_, err := client.GetArtwork(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrArtworkNotFound)
}

func TestGetArtwork_NullData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": null}`))
	})

	_, err := client.GetArtwork(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrArtworkNotFound)
}

func TestGetArtwork_InvalidID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.GetArtwork(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArtworkID)
}
