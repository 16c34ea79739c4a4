package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platescan/backend/internal/models"
	"github.com/platescan/backend/internal/service"
	"github.com/platescan/backend/internal/types"
)

// RecipeHandler serves recipe-assisted scans.
type RecipeHandler struct {
	analysis *service.AnalysisService
	store    service.RecordStore
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(analysis *service.AnalysisService, store service.RecordStore) *RecipeHandler {
	return &RecipeHandler{analysis: analysis, store: store}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipe", h.Analyze)
	router.GET("/recipe", h.List)
}

// Analyze runs a recipe-assisted scan and returns the validated estimate
// with its echoed recipe context.
func (h *RecipeHandler) Analyze(c *gin.Context) {
	var req types.RecipeAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.analysis.AnalyzeRecipe(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to analyze food image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": types.RecipeAnalysisResponse{
			FoodName:    record.FoodName,
			Calories:    record.Calories,
			Proteins:    record.Proteins,
			Fats:        record.Fats,
			RecipeName:  record.RecipeName,
			Ingredients: record.Ingredients,
		},
	})
}

// List returns records created via recipe-assisted analysis.
func (h *RecipeHandler) List(c *gin.Context) {
	records, err := h.store.ListBySource(c.Request.Context(), models.SourceRecipe)
	if err != nil {
		respondError(c, err, "Failed to fetch recipes")
		return
	}
	c.JSON(http.StatusOK, records)
}
