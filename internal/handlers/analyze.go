// analyze.go handles the analysis endpoint.
//
// POST /api/v1/analyze — run the full pipeline over syllabus + past papers
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepwise/exam-prep-api/internal/middleware"
	"github.com/prepwise/exam-prep-api/internal/models"
)

// Analyze runs the summarize → predict → aggregate pipeline.
// POST /api/v1/analyze
//
// Empty inputs are rejected by the analyzer before any model call; both
// model calls are sequential and the request blocks until they finish.
// There is no partial response — any stage failing fails the request.
func (h *Handler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be JSON with syllabus_text and papers_text fields.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	result, err := h.Analyzer.Analyze(c.Request.Context(), req.SyllabusText, req.PapersText)
	if err != nil {
		log.Printf("Analysis failed (request %s): %v", middleware.GetRequestID(c), err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
