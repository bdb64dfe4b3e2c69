package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lcintel/internal/unlocode"
)

// PortHandler handles UN/LOCODE location search endpoints.
type PortHandler struct {
	index *unlocode.Index
}

// NewPortHandler creates a new PortHandler.
func NewPortHandler(index *unlocode.Index) *PortHandler {
	return &PortHandler{index: index}
}

// Search handles GET /api/v1/ports/search?q=&country=&ports_only=&limit=
func (h *PortHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "query parameter 'q' is required")
		return
	}

	opts := unlocode.SearchOptions{
		Country:   strings.ToUpper(strings.TrimSpace(c.Query("country"))),
		PortsOnly: c.Query("ports_only") == "true",
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "limit must be an integer between 1 and 100")
			return
		}
		opts.Limit = limit
	}

	matches := h.index.Search(query, opts)
	RespondOK(c, gin.H{"query": query, "matches": matches, "total": len(matches)})
}
