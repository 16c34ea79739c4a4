package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/platescan/backend/config"
	"github.com/platescan/backend/internal/api"
	"github.com/platescan/backend/internal/middleware"
)

// Server is the HTTP front of the analysis pipeline. All request handling
// is synchronous: one analysis request means at most one completion call
// and one store write, with no background workers.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *slog.Logger
}

// Handlers bundles the route handlers mounted under /api/v1.
type Handlers struct {
	Food     *api.FoodHandler
	Recipe   *api.RecipeHandler
	Analysis *api.AnalysisHandler
	Register *api.RegisterHandler
}

// New assembles the gin engine and its middleware.
func New(cfg *config.Config, logger *slog.Logger, h Handlers) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	h.Food.RegisterRoutes(v1)
	h.Recipe.RegisterRoutes(v1)
	h.Analysis.RegisterRoutes(v1)
	h.Register.RegisterRoutes(v1)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerAddr(),
			Handler: router,
		},
		logger: logger,
	}
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
