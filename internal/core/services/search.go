package services

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"artwork-search-service/internal/core/domain"
	ports "artwork-search-service/internal/core/ports/output"
)

// SearchStatus tells the renderer which of the result states to show
type SearchStatus string

const (
	StatusResults SearchStatus = "results"
	StatusEmpty   SearchStatus = "empty"
	StatusPrompt  SearchStatus = "prompt"
	StatusError   SearchStatus = "error"
)

// User-visible inline messages
const (
	MessageNoResults    = "No results found. Try a different query."
	MessageNoCards      = "No results found."
	MessagePrompt       = "Please enter a search term."
	MessageSearchFailed = "Something went wrong. Please try again."
	MessageDetailFailed = "Could not load artwork details."
)

const defaultSearchPageSize = 10

// Card summarizes one artwork in the results grid
type Card struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

// SearchResult is the rendered outcome of a search. Message is set for every
// status except StatusResults.
type SearchResult struct {
	Query   string       `json:"query"`
	Status  SearchStatus `json:"status"`
	Message string       `json:"message,omitempty"`
	Cards   []Card       `json:"cards"`
}

// ModalContent holds the detail fields of one artwork, fallbacks applied
type ModalContent struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Date          string `json:"date"`
	Medium        string `json:"medium"`
	CreditLine    string `json:"credit_line"`
	PlaceOfOrigin string `json:"place_of_origin"`
	Gallery       string `json:"gallery"`
	ImageURL      string `json:"image_url"`
	AltText       string `json:"alt_text"`
}

// Modal is an overlay around detail content. Both the close control and the
// backdrop dismiss it by navigating to CloseURL.
type Modal struct {
	Content  *ModalContent
	CloseURL string
}

// SearchService drives the search-and-display cycle
type SearchService struct {
	catalog  ports.CatalogClient
	images   domain.ImageResolver
	pageSize int
}

// NewSearchService creates a new search service
func NewSearchService(catalog ports.CatalogClient, images domain.ImageResolver, pageSize int) *SearchService {
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	return &SearchService{
		catalog:  catalog,
		images:   images,
		pageSize: pageSize,
	}
}

// InitialLoad runs the unfiltered search shown before the user types anything.
func (s *SearchService) InitialLoad(ctx context.Context) *SearchResult {
	return s.Search(ctx, "")
}

// Submit handles an explicit search request. Blank input shows a prompt and
// never reaches the catalog.
func (s *SearchService) Submit(ctx context.Context, input string) *SearchResult {
	query := strings.TrimSpace(input)
	if query == "" {
		return &SearchResult{
			Status:  StatusPrompt,
			Message: MessagePrompt,
			Cards:   []Card{},
		}
	}
	return s.Search(ctx, query)
}

// Search queries the catalog and renders the outcome. Failures become an
// inline message; Search never returns an error.
func (s *SearchService) Search(ctx context.Context, query string) *SearchResult {
	artworks, err := s.catalog.Search(ctx, ports.SearchQuery{
		Text:  query,
		Limit: s.pageSize,
	})
	if err != nil {
		log.WithError(err).WithField("query", query).Error("search artworks failed")
		return &SearchResult{
			Query:   query,
			Status:  StatusError,
			Message: MessageSearchFailed,
			Cards:   []Card{},
		}
	}

	if len(artworks) == 0 {
		return &SearchResult{
			Query:   query,
			Status:  StatusEmpty,
			Message: MessageNoResults,
			Cards:   []Card{},
		}
	}

	result := s.RenderCards(artworks)
	result.Query = query
	return result
}

// RenderCards builds a fresh card list, replacing whatever was shown before.
func (s *SearchService) RenderCards(artworks []domain.ArtworkSummary) *SearchResult {
	if len(artworks) == 0 {
		return &SearchResult{
			Status:  StatusEmpty,
			Message: MessageNoCards,
			Cards:   []Card{},
		}
	}

	cards := make([]Card, 0, len(artworks))
	for _, a := range artworks {
		cards = append(cards, Card{
			ID:       a.ID,
			Title:    domain.Or(a.Title, domain.FallbackTitle),
			Artist:   domain.Or(a.ArtistTitle, domain.FallbackCardArtist),
			ImageURL: s.images.URL(a, domain.CardImageWidth),
			AltText:  a.AltText(),
		})
	}

	return &SearchResult{
		Status: StatusResults,
		Cards:  cards,
	}
}

// FetchDetail loads one artwork for the modal.
func (s *SearchService) FetchDetail(ctx context.Context, id int64) (*ModalContent, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidArtworkID
	}

	artwork, err := s.catalog.GetArtwork(ctx, id)
	if err != nil {
		log.WithError(err).WithField("artwork_id", id).Error("fetch artwork details failed")
		return nil, err
	}

	return &ModalContent{
		ID:            artwork.ID,
		Title:         domain.Or(artwork.Title, domain.FallbackTitle),
		Artist:        domain.Or(artwork.ArtistTitle, domain.FallbackModalArtist),
		Date:          domain.Or(artwork.DateDisplay, domain.FallbackDate),
		Medium:        domain.Or(artwork.MediumDisplay, domain.FallbackMedium),
		CreditLine:    domain.Or(artwork.CreditLine, domain.FallbackCreditLine),
		PlaceOfOrigin: domain.Or(artwork.PlaceOfOrigin, domain.FallbackOrigin),
		Gallery:       domain.Or(artwork.GalleryTitle, domain.FallbackGallery),
		ImageURL:      s.images.URL(artwork.ArtworkSummary, domain.ModalImageWidth),
		AltText:       domain.Or(artwork.Title, domain.FallbackTitle),
	}, nil
}

// ShowModal wraps detail content in a dismissible overlay.
func (s *SearchService) ShowModal(content *ModalContent, closeURL string) *Modal {
	if closeURL == "" {
		closeURL = "/"
	}
	return &Modal{
		Content:  content,
		CloseURL: closeURL,
	}
}
