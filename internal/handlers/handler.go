// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides
// request data, response methods, and middleware values. We group related
// handlers into a struct (Handler) that holds shared dependencies —
// dependency injection via struct fields, which makes testing easy.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepwise/exam-prep-api/internal/apperr"
	"github.com/prepwise/exam-prep-api/internal/models"
	"github.com/prepwise/exam-prep-api/internal/services/pdf"
)

// Analyzer is the analysis pipeline the handlers invoke. Satisfied by
// analyzer.Service.
type Analyzer interface {
	Analyze(ctx context.Context, syllabusText, papersText string) (*models.AnalysisResult, error)
}

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Analyzer   Analyzer
	Engine     pdf.Engine
	MaxPDFSize int64 // Upload limit in bytes
	Model      string
	Version    string
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(analyzer Analyzer, engine pdf.Engine, maxPDFSize int64, model, version string) *Handler {
	return &Handler{
		Analyzer:   analyzer,
		Engine:     engine,
		MaxPDFSize: maxPDFSize,
		Model:      model,
		Version:    version,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	model := h.Model
	if model == "" {
		model = "not configured"
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Version:   h.Version,
		Model:     model,
		PDFEngine: string(h.Engine),
	})
}

// fail writes the standard error response for a pipeline error, mapping
// the error's kind to an HTTP status.
func fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)

	status := http.StatusInternalServerError
	label := "internal_error"
	switch kind {
	case apperr.Validation:
		status = http.StatusBadRequest
		label = "validation_error"
	case apperr.Extraction:
		status = http.StatusInternalServerError
		label = "extraction_error"
	case apperr.Summarization:
		status = http.StatusBadGateway
		label = "summarization_error"
	case apperr.Prediction:
		status = http.StatusBadGateway
		label = "prediction_error"
	}

	message := "Something went wrong. Please try again."
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Error()
	} else if err != nil {
		message = err.Error()
	}

	c.JSON(status, models.ErrorResponse{
		Error:   label,
		Message: message,
		Code:    status,
	})
}
