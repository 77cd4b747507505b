package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"artwork-search-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrArtworkNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArtworkID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCatalogUnavailable),
		errors.Is(err, domain.ErrInvalidCatalogResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func mapDomainError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseArtworkID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidArtworkID
	}
	return id, nil
}
