package handlers

import (
	"errors"
	"net/http"

	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes. Post ids are passed
// through to the social ledger unchecked; the like ledger is independent of
// the post ledger, so liking an unminted id succeeds.
type LikeHandler struct {
	graph ledger.SocialGraph
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(graph ledger.SocialGraph) *LikeHandler {
	return &LikeHandler{graph: graph}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCount)
	g.GET("/posts/:post_id/likes/status", h.GetLikeStatus)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	liker := walletFromContext(c)
	if liker == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	postID, err := postIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.graph.LikePost(postID, liker); err != nil {
		if errors.Is(err, ledger.ErrAlreadyLiked) {
			return echo.NewHTTPError(http.StatusConflict, "Post already liked by this wallet")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"post_id": postID, "liked": true})
}

// UnlikePost handles unliking a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	liker := walletFromContext(c)
	if liker == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	postID, err := postIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.graph.UnlikePost(postID, liker); err != nil {
		if errors.Is(err, ledger.ErrNotLiked) {
			return echo.NewHTTPError(http.StatusNotFound, "Like not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLikesCount retrieves the total number of likes for a post, 0 by default
func (h *LikeHandler) GetLikesCount(c echo.Context) error {
	postID, err := postIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	count, err := h.graph.GetLikesCount(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}

// GetLikeStatus checks if the authenticated wallet has liked a post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	liker := walletFromContext(c)
	if liker == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	postID, err := postIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	hasLiked, err := h.graph.HasUserLiked(postID, liker)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "liker": liker, "has_liked": hasLiked})
}
