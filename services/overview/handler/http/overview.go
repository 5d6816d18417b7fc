package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	nrpkg "github.com/sewamobil/sewamobil/internal/pkg/newrelic"
	"github.com/sewamobil/sewamobil/internal/utils"
	"github.com/sewamobil/sewamobil/services/overview"
)

// OverviewHandler handles HTTP requests for the admin dashboard
type OverviewHandler struct {
	overviewUC overview.OverviewUC
}

// NewOverviewHandler creates a new overview HTTP handler
func NewOverviewHandler(overviewUC overview.OverviewUC) *OverviewHandler {
	return &OverviewHandler{overviewUC: overviewUC}
}

// RegisterRoutes registers the admin overview route
func (h *OverviewHandler) RegisterRoutes(e *echo.Echo, auth, adminGate echo.MiddlewareFunc) {
	e.GET("/api/admin/overview", h.GetOverview, auth, adminGate)
}

// GetOverview returns booking metrics and revenue series
func (h *OverviewHandler) GetOverview(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Overview.Get")

	o, err := h.overviewUC.GetOverview(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("failed to build overview", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build overview")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Overview retrieved", o)
}
