package ports

import (
	"context"

	"artwork-search-service/internal/core/domain"
)

// SearchQuery is one request to the catalog search endpoint. Results are
// always restricted to public-domain works.
type SearchQuery struct {
	Text  string
	Limit int
}

// CatalogClient defines the contract for the remote artwork catalog
type CatalogClient interface {
	// Search returns at most query.Limit summaries. An empty result is not an error.
	Search(ctx context.Context, query SearchQuery) ([]domain.ArtworkSummary, error)

	// GetArtwork fetches a single record by id.
	GetArtwork(ctx context.Context, id int64) (*domain.ArtworkDetail, error)
}
