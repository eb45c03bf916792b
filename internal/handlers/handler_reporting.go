package handlers

import (
	"net/http"

	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard endpoint.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the dashboard route.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Returns financial totals, pending receipt, low-stock and out-of-stock counts, and this month's consultation and vaccination counters.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to compute dashboard summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
