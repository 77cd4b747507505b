package handlers

import (
	"artwork-search-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	searchSvc *services.SearchService
}

func New(searchSvc *services.SearchService) *Handler {
	return &Handler{
		searchSvc: searchSvc,
	}
}

// RegisterRoutes mounts the HTML pages at the root and the JSON API under /api/v1.
// The engine must have templates loaded (see LoadTemplates).
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Pages
	r.GET("/", h.Index)
	r.GET("/artworks/:id", h.ArtworkFragment)

	// JSON API
	api := r.Group("/api/v1")
	api.GET("/artworks/search", h.SearchArtworks)
	api.GET("/artworks/:id", h.GetArtwork)
}
