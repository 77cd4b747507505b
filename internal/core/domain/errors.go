package domain

import "errors"

// ============================================================================
// Catalog Errors
// ============================================================================

var (
	ErrArtworkNotFound        = errors.New("artwork not found")
	ErrInvalidArtworkID       = errors.New("artwork id must be a positive integer")
	ErrCatalogUnavailable     = errors.New("artwork catalog unavailable")
	ErrInvalidCatalogResponse = errors.New("invalid artwork catalog response")
)
