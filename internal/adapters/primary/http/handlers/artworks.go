package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchArtworks returns the search outcome as JSON. Without a q parameter it
// runs the unfiltered initial search; a blank q yields the prompt status.
func (h *Handler) SearchArtworks(c *gin.Context) {
	ctx := c.Request.Context()

	input, submitted := c.GetQuery("q")
	if !submitted {
		c.JSON(http.StatusOK, h.searchSvc.InitialLoad(ctx))
		return
	}
	c.JSON(http.StatusOK, h.searchSvc.Submit(ctx, input))
}

func (h *Handler) GetArtwork(c *gin.Context) {
	id, err := parseArtworkID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.searchSvc.FetchDetail(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}
