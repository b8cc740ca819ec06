// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/prepwise/exam-prep-api/internal/config"
	"github.com/prepwise/exam-prep-api/internal/handlers"
	"github.com/prepwise/exam-prep-api/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
func Setup(cfg *config.Config, analyzer handlers.Analyzer, version string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	h := handlers.NewHandler(analyzer, cfg.PDFEngine, cfg.MaxPDFSizeBytes(), cfg.OpenRouterModel, version)
	rateLimiter := middleware.NewRateLimiter(cfg.DefaultRateLimit)

	// --- Public routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)

	// API documentation
	r.GET("/api/docs", h.ServeSwaggerUI)
	r.GET("/api/docs/openapi.yaml", h.ServeOpenAPISpec)

	// --- Protected routes (shared API key when configured) ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.APIKeyAuth(cfg.APIKey))
	protected.Use(rateLimiter.RateLimit())
	{
		// PDF extraction
		protected.POST("/pdf/extract", h.ExtractPDF)
		protected.POST("/pdf/extract-batch", h.ExtractPDFBatch)

		// Analysis pipeline
		protected.POST("/analyze", h.Analyze)
	}

	return r
}
