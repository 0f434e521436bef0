package handlers

import (
	"errors"
	"net/http"

	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	graph ledger.SocialGraph
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(graph ledger.SocialGraph) *FollowHandler {
	return &FollowHandler{graph: graph}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:address/follow", h.FollowUser)
	g.DELETE("/users/:address/follow", h.UnfollowUser)
	g.GET("/users/:address/follow/status", h.GetFollowStatus)
	g.GET("/users/:address/followers", h.GetFollowers)
	g.GET("/users/:address/following", h.GetFollowing)
	g.GET("/users/:address/followers/count", h.GetFollowerCount)
}

// FollowUser follows a wallet address
func (h *FollowHandler) FollowUser(c echo.Context) error {
	follower := walletFromContext(c)
	if follower == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}
	target := c.Param("address")

	if err := h.graph.FollowUser(follower, target); err != nil {
		switch {
		case errors.Is(err, ledger.ErrSelfFollow):
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
		case errors.Is(err, ledger.ErrAlreadyFollowing):
			return echo.NewHTTPError(http.StatusConflict, "Already following this address")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser unfollows a wallet address
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	follower := walletFromContext(c)
	if follower == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}
	target := c.Param("address")

	if err := h.graph.UnfollowUser(follower, target); err != nil {
		if errors.Is(err, ledger.ErrNotFollowing) {
			return echo.NewHTTPError(http.StatusNotFound, "Not following this address")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowStatus checks if the authenticated wallet follows an address
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	follower := walletFromContext(c)
	if follower == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	following, err := h.graph.IsFollowing(follower, c.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"following": following})
}

// GetFollowers lists the addresses following a wallet
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	followers, err := h.graph.GetFollowers(c.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"followers": followers})
}

// GetFollowing lists the addresses a wallet follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	following, err := h.graph.GetFollowing(c.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"following": following})
}

// GetFollowerCount returns the follower count for a wallet, 0 by default
func (h *FollowHandler) GetFollowerCount(c echo.Context) error {
	count, err := h.graph.GetFollowerCount(c.Param("address"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"address": c.Param("address"), "followers_count": count})
}
