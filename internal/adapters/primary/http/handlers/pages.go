package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"artwork-search-service/internal/core/services"
)

// pageView is the data behind index.html.
type pageView struct {
	Input       string
	Filtered    bool
	Result      *services.SearchResult
	Modal       *services.Modal
	DetailError string
}

func (p pageView) values() url.Values {
	v := url.Values{}
	if p.Filtered {
		v.Set("q", p.Input)
	}
	return v
}

// CardURL opens the modal for id while keeping the current search.
func (p pageView) CardURL(id int64) string {
	v := p.values()
	v.Set("artwork", strconv.FormatInt(id, 10))
	return "/?" + v.Encode()
}

// CloseURL is the current search without a modal.
func (p pageView) CloseURL() string {
	v := p.values()
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// Index renders the search page. No q parameter means initial load; an
// artwork parameter opens the detail modal over the results.
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	input, submitted := c.GetQuery("q")
	page := pageView{
		Input:    strings.TrimSpace(input),
		Filtered: submitted,
	}

	if submitted {
		page.Result = h.searchSvc.Submit(ctx, input)
	} else {
		page.Result = h.searchSvc.InitialLoad(ctx)
	}

	if raw := c.Query("artwork"); raw != "" {
		id, err := parseArtworkID(raw)
		if err != nil {
			log.WithField("artwork", raw).Warn("ignoring invalid artwork id")
		} else if content, err := h.searchSvc.FetchDetail(ctx, id); err != nil {
			page.DetailError = services.MessageDetailFailed
		} else {
			page.Modal = h.searchSvc.ShowModal(content, page.CloseURL())
		}
	}

	c.HTML(http.StatusOK, "index.html", page)
}

// ArtworkFragment renders only the modal markup, for in-page injection.
func (h *Handler) ArtworkFragment(c *gin.Context) {
	id, err := parseArtworkID(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "detail-error.html", gin.H{"Message": services.MessageDetailFailed})
		return
	}

	content, err := h.searchSvc.FetchDetail(c.Request.Context(), id)
	if err != nil {
		c.HTML(errorStatus(err), "detail-error.html", gin.H{"Message": services.MessageDetailFailed})
		return
	}

	closeURL := c.DefaultQuery("close", "/")
	if !strings.HasPrefix(closeURL, "/") || strings.HasPrefix(closeURL, "//") {
		closeURL = "/"
	}

	c.HTML(http.StatusOK, "modal.html", h.searchSvc.ShowModal(content, closeURL))
}
