package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"artwork-search-service/internal/core/domain"
	ports "artwork-search-service/internal/core/ports/output"
)

// MockCatalogClient is a mock of CatalogClient.
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) Search(ctx context.Context, query ports.SearchQuery) ([]domain.ArtworkSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArtworkSummary), args.Error(1)
}

func (m *MockCatalogClient) GetArtwork(ctx context.Context, id int64) (*domain.ArtworkDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtworkDetail), args.Error(1)
}

// TestImages is the image resolver used across tests.
var TestImages = domain.ImageResolver{
	BaseURL:        "https://www.artic.edu/iiif/2",
	PlaceholderURL: "https://via.placeholder.com/200x200?text=No+Image",
}
