package handlers

import (
	"errors"
	"net/http"

	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/labstack/echo/v4"
)

// TipHandler handles HTTP requests related to tips. The recipient comes from
// the request body, not from the post's author; the calling layer is trusted
// to resolve the right address.
type TipHandler struct {
	graph ledger.SocialGraph
}

// NewTipHandler creates a new TipHandler
func NewTipHandler(graph ledger.SocialGraph) *TipHandler {
	return &TipHandler{graph: graph}
}

// RegisterTipRoutes registers tip-related routes
func (h *TipHandler) RegisterTipRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/tips", h.TipPost)
	g.GET("/posts/:post_id/tips", h.GetTipsAmount)
	g.GET("/users/:address/tips/received", h.GetTotalTipsReceived)
}

// TipPost transfers value from the authenticated wallet to the recipient and
// records it against the post
func (h *TipHandler) TipPost(c echo.Context) error {
	from := walletFromContext(c)
	if from == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	postID, err := postIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.TipPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tip, err := h.graph.TipPost(postID, from, req.Recipient, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrZeroValue):
			return echo.NewHTTPError(http.StatusBadRequest, "Tip value must be positive")
		case errors.Is(err, ledger.ErrTransferFailed):
			return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, tip)
}

// GetTipsAmount retrieves the accumulated tips for a post, 0 by default
func (h *TipHandler) GetTipsAmount(c echo.Context) error {
	postID, err := postIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	amount, err := h.graph.GetTipsAmount(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "tips_amount": amount})
}

// GetTotalTipsReceived retrieves the lifetime tips credited to an address
func (h *TipHandler) GetTotalTipsReceived(c echo.Context) error {
	address := c.Param("address")

	total, err := h.graph.GetTotalTipsReceived(address)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"address": address, "total_tips_received": total})
}
