package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platescan/backend/internal/service"
	"github.com/platescan/backend/internal/types"
)

// FoodHandler serves plain food scans and record listings.
type FoodHandler struct {
	analysis *service.AnalysisService
	store    service.RecordStore
}

// NewFoodHandler creates a FoodHandler.
func NewFoodHandler(analysis *service.AnalysisService, store service.RecordStore) *FoodHandler {
	return &FoodHandler{analysis: analysis, store: store}
}

// RegisterRoutes registers the food routes
func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/food", h.Analyze)
	router.GET("/food", h.List)
}

// Analyze runs a plain scan and returns the validated estimate.
func (h *FoodHandler) Analyze(c *gin.Context) {
	var req types.FoodAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.analysis.AnalyzeFood(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to analyze food image")
		return
	}

	c.JSON(http.StatusOK, types.FoodAnalysisResponse{
		FoodName: record.FoodName,
		Calories: record.Calories,
		Proteins: record.Proteins,
		Fats:     record.Fats,
	})
}

// List returns every persisted record.
func (h *FoodHandler) List(c *gin.Context) {
	records, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch foods")
		return
	}
	c.JSON(http.StatusOK, records)
}
