package handlers

import (
	"net/http"
	"strconv"

	"github.com/atharvabaodhankar/socio3-ledger/internal/mirror"
	"github.com/labstack/echo/v4"
)

// SearchHandler serves reads from the eventually consistent mirror projection
type SearchHandler struct {
	mirror *mirror.MongoMirror
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(m *mirror.MongoMirror) *SearchHandler {
	return &SearchHandler{mirror: m}
}

// RegisterSearchRoutes registers search-related routes
func (h *SearchHandler) RegisterSearchRoutes(g *echo.Group) {
	g.GET("/search/posts", h.SearchPosts)
}

// SearchPosts queries the mirror, optionally filtered by author. Results may
// lag the ledger; authoritative reads go through the post routes.
func (h *SearchHandler) SearchPosts(c echo.Context) error {
	author := c.QueryParam("author")
	includeRemoved := c.QueryParam("include_removed") == "true"
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 10
	}

	docs, err := h.mirror.SearchPosts(c.Request().Context(), author, includeRemoved, skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, docs)
}
