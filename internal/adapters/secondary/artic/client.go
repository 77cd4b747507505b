package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"artwork-search-service/internal/config"
	"artwork-search-service/internal/core/domain"
	ports "artwork-search-service/internal/core/ports/output"

	log "github.com/sirupsen/logrus"
)

const publicDomainFilter = "query[term][is_public_domain]"

type catalogClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewCatalogClient creates a new Art Institute of Chicago catalog adapter
func NewCatalogClient(cfg *config.CatalogConfig) ports.CatalogClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &catalogClient{
		baseURL:   strings.TrimRight(cfg.APIURL, "/"),
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Catalog API response structures
type searchResponse struct {
	Data []artworkRecord `json:"data"`
}

type detailResponse struct {
	Data *artworkRecord `json:"data"`
}

type artworkRecord struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ArtistTitle   string `json:"artist_title"`
	ImageID       string `json:"image_id"`
	DateDisplay   string `json:"date_display"`
	MediumDisplay string `json:"medium_display"`
	CreditLine    string `json:"credit_line"`
	PlaceOfOrigin string `json:"place_of_origin"`
	GalleryTitle  string `json:"gallery_title"`
}

func (r artworkRecord) summary() domain.ArtworkSummary {
	return domain.ArtworkSummary{
		ID:          r.ID,
		Title:       r.Title,
		ArtistTitle: r.ArtistTitle,
		ImageID:     r.ImageID,
	}
}

// SearchURL builds the search endpoint URL for a query.
func SearchURL(baseURL string, query ports.SearchQuery) string {
	params := url.Values{}
	params.Set("q", query.Text)
	params.Set(publicDomainFilter, "true")
	params.Set("fields", strings.Join(domain.SummaryFields, ","))
	params.Set("limit", strconv.Itoa(query.Limit))

	return fmt.Sprintf("%s/search?%s", strings.TrimRight(baseURL, "/"), params.Encode())
}

// DetailURL builds the single-item endpoint URL for an artwork id.
func DetailURL(baseURL string, id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimRight(baseURL, "/"), id)
}

func (c *catalogClient) Search(ctx context.Context, query ports.SearchQuery) ([]domain.ArtworkSummary, error) {
	var resp searchResponse
	if err := c.get(ctx, SearchURL(c.baseURL, query), &resp); err != nil {
		return nil, err
	}

	artworks := make([]domain.ArtworkSummary, 0, len(resp.Data))
	for _, r := range resp.Data {
		artworks = append(artworks, r.summary())
	}
	return artworks, nil
}

func (c *catalogClient) GetArtwork(ctx context.Context, id int64) (*domain.ArtworkDetail, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidArtworkID
	}

	var resp detailResponse
	if err := c.get(ctx, DetailURL(c.baseURL, id), &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, domain.ErrArtworkNotFound
	}

	r := resp.Data
	return &domain.ArtworkDetail{
		ArtworkSummary: r.summary(),
		DateDisplay:    r.DateDisplay,
		MediumDisplay:  r.MediumDisplay,
		CreditLine:     r.CreditLine,
		PlaceOfOrigin:  r.PlaceOfOrigin,
		GalleryTitle:   r.GalleryTitle,
	}, nil
}

func (c *catalogClient) get(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("AIC-User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	log.WithFields(log.Fields{
		"url":        reqURL,
		"status":     resp.StatusCode,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Debug("catalog request completed")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrArtworkNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: HTTP %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCatalogResponse, err)
	}
	return nil
}
