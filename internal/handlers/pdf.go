// pdf.go handles PDF text extraction HTTP endpoints.
//
// POST /api/v1/pdf/extract — upload one PDF file for text extraction
// POST /api/v1/pdf/extract-batch — upload several past-paper PDFs at once
//
// Upload validation lives here, not in the extractor: declared media type,
// file extension, magic bytes, and the size limit are all checked before
// the parser ever sees the payload, and the rejection message tells the
// user whether the file was "not a PDF" or "too large".
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prepwise/exam-prep-api/internal/models"
	pdfservice "github.com/prepwise/exam-prep-api/internal/services/pdf"
)

// maxConcurrentExtractions bounds the parser goroutines for one batch
// upload. Extractions for distinct files run concurrently; results are
// re-assembled in upload order afterwards.
const maxConcurrentExtractions = 4

// ExtractPDF handles a single PDF upload.
// POST /api/v1/pdf/extract
//
// Accepts a multipart upload with field name "file" and answers
// {id, filename, text, pages}. Processing is synchronous.
func (h *Handler) ExtractPDF(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxPDFSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		// MaxBytesReader trips inside FormFile when the whole body is over
		// the cap; report that as "too large", not "no file".
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "file_too_large",
				Message: fmt.Sprintf("Upload exceeds the %dMB limit.", h.MaxPDFSize>>20),
				Code:    http.StatusRequestEntityTooLarge,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: fmt.Sprintf("No PDF file provided. Upload a file with the field name 'file'. Max size: %dMB.", h.MaxPDFSize>>20),
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	data, errResp := h.readUpload(file, header)
	if errResp != nil {
		c.JSON(errResp.Code, errResp)
		return
	}

	result, err := pdfservice.ExtractWith(h.Engine, data)
	if err != nil {
		log.Printf("PDF extraction failed for %s: %v", header.Filename, err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ExtractionResponse{
		ID:       uuid.New().String(),
		Filename: header.Filename,
		Text:     result.Text,
		Pages:    result.Pages,
	})
}

// ExtractPDFBatch handles several past-paper uploads in one request.
// POST /api/v1/pdf/extract-batch
//
// Accepts a multipart upload with repeated "files" fields. Every file is
// validated up front; extraction then runs concurrently (bounded), and the
// combined text is folded in upload order so the filename delimiters are
// deterministic no matter which extraction finishes first.
func (h *Handler) ExtractPDFBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Expected a multipart upload with one or more 'files' fields.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No PDF files provided. Upload files with the field name 'files'.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Validate and read everything before any parsing starts — a batch
	// with one bad file fails whole, it does not return partial results.
	payloads := make([][]byte, len(headers))
	for i, header := range headers {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "read_error",
				Message: fmt.Sprintf("Failed to read uploaded file %q", header.Filename),
				Code:    http.StatusBadRequest,
			})
			return
		}

		data, errResp := h.readUpload(file, header)
		file.Close()
		if errResp != nil {
			c.JSON(errResp.Code, errResp)
			return
		}
		payloads[i] = data
	}

	type extraction struct {
		result *pdfservice.Result
		err    error
	}

	extractions := make([]extraction, len(headers))
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentExtractions)

	for i := range payloads {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := pdfservice.ExtractWith(h.Engine, payloads[idx])
			extractions[idx] = extraction{result: result, err: err}
		}(i)
	}
	wg.Wait()

	files := make([]models.ExtractionResponse, len(headers))
	docs := make([]pdfservice.PaperDocument, len(headers))
	for i, ex := range extractions {
		if ex.err != nil {
			log.Printf("PDF extraction failed for %s: %v", headers[i].Filename, ex.err)
			fail(c, ex.err)
			return
		}

		files[i] = models.ExtractionResponse{
			ID:       uuid.New().String(),
			Filename: headers[i].Filename,
			Text:     ex.result.Text,
			Pages:    ex.result.Pages,
		}
		docs[i] = pdfservice.PaperDocument{
			Filename: headers[i].Filename,
			Text:     ex.result.Text,
		}
	}

	c.JSON(http.StatusOK, models.BatchExtractionResponse{
		Files:        files,
		CombinedText: pdfservice.JoinPapers(docs),
	})
}

// readUpload validates one uploaded file and returns its bytes, or an
// error response distinguishing "too large" from "not a PDF".
func (h *Handler) readUpload(file multipart.File, header *multipart.FileHeader) ([]byte, *models.ErrorResponse) {
	if header.Size > h.MaxPDFSize {
		return nil, &models.ErrorResponse{
			Error:   "file_too_large",
			Message: fmt.Sprintf("File %q exceeds the %dMB upload limit.", header.Filename, h.MaxPDFSize>>20),
			Code:    http.StatusRequestEntityTooLarge,
		}
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	declaredType := header.Header.Get("Content-Type")
	if ext != ".pdf" && declaredType != "application/pdf" {
		return nil, &models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: fmt.Sprintf("File %q is not a PDF. Only PDF documents are accepted.", header.Filename),
			Code:    http.StatusBadRequest,
		}
	}

	data, err := io.ReadAll(io.LimitReader(file, h.MaxPDFSize+1))
	if err != nil {
		return nil, &models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read uploaded file",
			Code:    http.StatusBadRequest,
		}
	}
	if int64(len(data)) > h.MaxPDFSize {
		return nil, &models.ErrorResponse{
			Error:   "file_too_large",
			Message: fmt.Sprintf("File %q exceeds the %dMB upload limit.", header.Filename, h.MaxPDFSize>>20),
			Code:    http.StatusRequestEntityTooLarge,
		}
	}

	if !pdfservice.ValidatePDF(data) {
		return nil, &models.ErrorResponse{
			Error:   "invalid_pdf",
			Message: fmt.Sprintf("File %q is not a PDF. The payload does not look like a PDF document.", header.Filename),
			Code:    http.StatusBadRequest,
		}
	}

	return data, nil
}
