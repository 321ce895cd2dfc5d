package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/metadata"
)

// MetadataController proxies free-text searches to the Google Books API and
// returns the reshaped results. It never writes to the catalog.
type MetadataController struct {
	searcher VolumeSearcher
}

// NewMetadataController creates a new MetadataController.
func NewMetadataController(searcher VolumeSearcher) *MetadataController {
	return &MetadataController{
		searcher: searcher,
	}
}

// SearchGoogleBooks handles GET /api/search-google-books?q=
func (mc *MetadataController) SearchGoogleBooks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondBadRequest(c, "search parameter (q) is required")
		return
	}

	result, err := mc.searcher.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, metadata.ErrUpstream) {
			respondError(c, http.StatusInternalServerError, "error reaching the Google Books API: "+err.Error())
			return
		}
		respondInternalError(c, err, "google books search")
		return
	}

	c.JSON(http.StatusOK, result)
}
