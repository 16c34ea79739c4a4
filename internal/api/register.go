package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platescan/backend/internal/service"
	"github.com/platescan/backend/internal/types"
)

// RegisterHandler serves profile registration and listing.
type RegisterHandler struct {
	goals *service.GoalService
}

// NewRegisterHandler creates a RegisterHandler.
func NewRegisterHandler(goals *service.GoalService) *RegisterHandler {
	return &RegisterHandler{goals: goals}
}

// RegisterRoutes registers the registration routes
func (h *RegisterHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", h.Register)
	router.GET("/register", h.List)
}

// Register computes a daily goal for the submitted parameters and persists
// the profile.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.goals.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to process user data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile.NutritionalData})
}

// List returns all profiles, oldest first; the dashboard treats the last
// one as current.
func (h *RegisterHandler) List(c *gin.Context) {
	profiles, err := h.goals.Profiles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, profiles)
}
