package domain

import (
	"fmt"
	"strings"
)

// ArtworkSummary is a single search hit. Optional fields are empty when the
// catalog returns null or omits them.
type ArtworkSummary struct {
	ID          int64
	Title       string
	ArtistTitle string
	ImageID     string
}

// ArtworkDetail is the full record returned by the single-item endpoint.
type ArtworkDetail struct {
	ArtworkSummary
	DateDisplay   string
	MediumDisplay string
	CreditLine    string
	PlaceOfOrigin string
	GalleryTitle  string
}

// Fallback strings shown in place of missing fields.
const (
	FallbackTitle       = "Untitled"
	FallbackCardArtist  = "Unknown"
	FallbackModalArtist = "Unknown Artist"
	FallbackDate        = "Unknown Date"
	FallbackMedium      = "Unknown Medium"
	FallbackCreditLine  = "N/A"
	FallbackOrigin      = "Unknown"
	FallbackGallery     = "N/A"
	FallbackUntitledAlt = "Artwork with no title"
)

// Image widths requested from the image service.
const (
	CardImageWidth  = 200
	ModalImageWidth = 800
)

// SummaryFields is the field selection sent with every search.
var SummaryFields = []string{"id", "title", "image_id", "artist_title"}

// Or returns value, or fallback when value is blank.
func Or(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// AltText describes a card image for screen readers.
func (a ArtworkSummary) AltText() string {
	if strings.TrimSpace(a.Title) == "" {
		return FallbackUntitledAlt
	}
	return fmt.Sprintf("%s by %s", a.Title, Or(a.ArtistTitle, FallbackModalArtist))
}

func (a ArtworkSummary) HasImage() bool {
	return strings.TrimSpace(a.ImageID) != ""
}

// ImageResolver derives image URLs from image identifiers using the IIIF
// path template {base}/{image_id}/full/{width},/0/default.jpg.
type ImageResolver struct {
	BaseURL        string
	PlaceholderURL string
}

// URL returns the image URL at the given width, or the placeholder when the
// artwork has no image.
func (r ImageResolver) URL(a ArtworkSummary, width int) string {
	if !a.HasImage() {
		return r.PlaceholderURL
	}
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", strings.TrimRight(r.BaseURL, "/"), a.ImageID, width)
}
