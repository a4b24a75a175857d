package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/dto"
	"github.com/fintrackr/personal_finance_app/internal/utils/aggregation"
)

// reportHandler serves the read-only reporting and analysis endpoints.
type reportHandler struct {
	reportingService portssvc.ReportingSvc
	analysisService  portssvc.AnalysisSvc
}

// RegisterReportRoutes registers the reporting and analysis routes.
func RegisterReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, analysisService portssvc.AnalysisSvc) {
	h := &reportHandler{reportingService: reportingService, analysisService: analysisService}

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.dashboard)
		reports.GET("/monthly/:monthKey", h.monthlyReport)
		reports.GET("/analysis", h.analysis)
		reports.GET("/insight", h.insight)
	}
}

func (h *reportHandler) dashboard(c *gin.Context) {
	snapshot, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *reportHandler) monthlyReport(c *gin.Context) {
	monthKey := c.Param("monthKey")
	if !monthKeyPattern.MatchString(monthKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month key, expected YYYY-MM"})
		return
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), monthKey)
	if err != nil {
		respondError(c, err, "Failed to build monthly report")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report, aggregation.MonthDisplayName(monthKey)))
}

func (h *reportHandler) analysis(c *gin.Context) {
	report, err := h.analysisService.Comprehensive(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build financial analysis")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportHandler) insight(c *gin.Context) {
	insight, err := h.analysisService.TopInsight(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build financial insight")
		return
	}
	c.JSON(http.StatusOK, insight)
}
