package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platescan/backend/internal/service"
)

// aggregateWindowDays is the trailing window shown on the dashboard.
const aggregateWindowDays = 7

// AnalysisHandler serves the daily intake aggregate.
type AnalysisHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(analytics *service.AnalyticsService) *AnalysisHandler {
	return &AnalysisHandler{analytics: analytics}
}

// RegisterRoutes registers the analysis routes
func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/analysis", h.Summary)
}

// Summary returns the per-day totals for the trailing window, ascending by
// date. Days without records are omitted.
func (h *AnalysisHandler) Summary(c *gin.Context) {
	summaries, err := h.analytics.SummarizeLastDays(c.Request.Context(), aggregateWindowDays)
	if err != nil {
		respondError(c, err, "Failed to analyze recipe data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summaries})
}
