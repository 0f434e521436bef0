package handlers

import (
	"errors"
	"net/http"

	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles HTTP requests related to post reports
type ReportHandler struct {
	registry ledger.PostRegistry
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(registry ledger.PostRegistry) *ReportHandler {
	return &ReportHandler{registry: registry}
}

// RegisterReportRoutes registers report-related routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/posts/:id/reports", h.ReportPost)
	g.GET("/posts/:id/reports", h.GetReports)
	g.GET("/posts/:id/reports/count", h.GetReportCount)
	g.GET("/posts/:id/reports/status", h.GetReportStatus)
}

// ReportPost records a report from the authenticated wallet
func (h *ReportHandler) ReportPost(c echo.Context) error {
	reporter := walletFromContext(c)
	if reporter == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	postID, err := postIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.registry.ReportPost(postID, reporter, req.ReportType, req.Reason); err != nil {
		switch {
		case errors.Is(err, ledger.ErrPostNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		case errors.Is(err, ledger.ErrAlreadyReported):
			return echo.NewHTTPError(http.StatusConflict, "Post already reported by this wallet")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"post_id": postID, "reported": true})
}

// GetReports retrieves the audit trail of reports for a post
func (h *ReportHandler) GetReports(c echo.Context) error {
	postID, err := postIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	reports, err := h.registry.GetReports(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reports)
}

// GetReportCount returns the report count for a post; unknown ids answer 0
// rather than 404 so callers polling a fresh ledger get a usable default
func (h *ReportHandler) GetReportCount(c echo.Context) error {
	postID, err := postIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	count, err := h.registry.GetReportCount(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "report_count": count})
}

// GetReportStatus checks whether the authenticated wallet reported a post
func (h *ReportHandler) GetReportStatus(c echo.Context) error {
	reporter := walletFromContext(c)
	if reporter == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet not authenticated")
	}

	postID, err := postIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	reported, err := h.registry.HasReported(postID, reporter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "reporter": reporter, "has_reported": reported})
}
