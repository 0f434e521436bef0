package handlers

import (
	"errors"
	"net/http"

	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	registry ledger.PostRegistry
	graph    ledger.SocialGraph // like counts feed the removal classification
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(registry ledger.PostRegistry, graph ledger.SocialGraph) *PostHandler {
	return &PostHandler{registry: registry, graph: graph}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts/:id/moderation", h.GetModerationStatus)
	g.GET("/users/:address/posts", h.GetPostsByAuthor)
}

// CreatePost mints a new post for the authenticated wallet
func (h *PostHandler) CreatePost(c echo.Context) error {
	author := walletFromContext(c)
	if author == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.registry.CreatePost(author, req.IPFSHash)
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyContent) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by id
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := postIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.registry.GetPost(postID)
	if err != nil {
		if errors.Is(err, ledger.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// GetPosts retrieves all posts in creation order
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.registry.GetAllPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPostsByAuthor retrieves the posts of one wallet address
func (h *PostHandler) GetPostsByAuthor(c echo.Context) error {
	posts, err := h.registry.GetPostsByAuthor(c.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetModerationStatus classifies a post against the removal policy. The
// classification is computed on read from the current report and like
// counts; nothing is stored.
func (h *PostHandler) GetModerationStatus(c echo.Context) error {
	postID, err := postIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if _, err := h.registry.GetPost(postID); err != nil {
		if errors.Is(err, ledger.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	reportCount, err := h.registry.GetReportCount(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	likesCount, err := h.graph.GetLikesCount(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	removed, reason := ledger.ShouldRemove(reportCount, likesCount)
	return c.JSON(http.StatusOK, echo.Map{
		"post_id":      postID,
		"removed":      removed,
		"reason":       reason,
		"report_count": reportCount,
		"likes_count":  likesCount,
	})
}
