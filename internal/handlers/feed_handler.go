package handlers

import (
	"net/http"
	"strconv"

	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/labstack/echo/v4"
)

// FeedHandler composes the authenticated wallet's feed from the two ledgers
type FeedHandler struct {
	registry ledger.PostRegistry
	graph    ledger.SocialGraph
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(registry ledger.PostRegistry, graph ledger.SocialGraph) *FeedHandler {
	return &FeedHandler{registry: registry, graph: graph}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// FeedPost is a post enriched with social counters and the removal flag.
// Removed posts stay in the feed with the flag set; hiding them is the
// client's call.
type FeedPost struct {
	models.Post
	LikesCount int64 `json:"likes_count"`
	TipsAmount int64 `json:"tips_amount"`
	IsLiked    bool  `json:"is_liked"`
	Removed    bool  `json:"removed"`
}

// GetFeed returns posts from followed wallets plus the caller's own, newest first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	wallet := walletFromContext(c)
	if wallet == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	following, err := h.graph.GetFollowing(wallet)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	authors := append(following, wallet)

	posts, err := h.registry.GetPostsByAuthors(authors)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Newest first, then page
	totalItems := len(posts)
	start := totalItems - page*limit
	end := totalItems - (page-1)*limit
	if end < 0 {
		end = 0
	}
	if start < 0 {
		start = 0
	}
	pagePosts := posts[start:end]

	feed := make([]FeedPost, 0, len(pagePosts))
	for i := len(pagePosts) - 1; i >= 0; i-- {
		p := pagePosts[i]

		likes, err := h.graph.GetLikesCount(p.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		tips, err := h.graph.GetTipsAmount(p.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		isLiked, err := h.graph.HasUserLiked(p.ID, wallet)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		removed, _ := ledger.ShouldRemove(int64(p.ReportCount), likes)

		feed = append(feed, FeedPost{
			Post:       p,
			LikesCount: likes,
			TipsAmount: tips,
			IsLiked:    isLiked,
			Removed:    removed,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts": feed,
		"pagination": echo.Map{
			"page":        page,
			"limit":       limit,
			"total_items": totalItems,
		},
	})
}
