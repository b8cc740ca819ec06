// Package pdf provides PDF text extraction for uploaded documents.
//
// Two engines are supported. The default uses the ledongthuc/pdf library
// (pure Go, no CGO — deployment stays a single binary). The alternate
// engine (alternate.go) wraps rsc.io/pdf and exists as a second,
// equivalently-behaving path selectable at deploy time. Neither engine
// enforces MIME type or size limits — that validation belongs to the
// upload handler, before extraction is invoked.
package pdf

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/prepwise/exam-prep-api/internal/apperr"
)

// Engine selects which parser backs Extract.
type Engine string

const (
	EngineLedongthuc Engine = "ledongthuc"
	EngineRSCPDF     Engine = "rscpdf"
)

// ValidEngine reports whether e names a known extraction engine.
func ValidEngine(e Engine) bool {
	return e == EngineLedongthuc || e == EngineRSCPDF
}

// Result holds the output of a PDF text extraction.
type Result struct {
	Text  string            // Extracted text content
	Pages int               // Page count, always >= 1
	Info  map[string]string // Optional document metadata (title, author)
}

// ExtractWith runs the named engine over the payload.
func ExtractWith(engine Engine, data []byte) (*Result, error) {
	if engine == EngineRSCPDF {
		return ExtractAlternate(data)
	}
	return Extract(data)
}

// Extract reads a PDF from the byte buffer and extracts all text content.
//
// Go Pattern: We accept a byte slice rather than a filename because the
// data comes from an HTTP upload (in memory), not a file on disk. The pdf
// library needs io.ReaderAt for random access to the PDF structure, so we
// wrap the slice in a bytes.Reader.
func Extract(data []byte) (*Result, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return nil, apperr.Wrap(apperr.Extraction, "failed to open PDF", err)
	}

	pageCount := pdfReader.NumPage()

	var allText strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages carry only images; skip rather than fail the document.
			continue
		}

		if allText.Len() > 0 {
			allText.WriteString("\n\n")
		}
		allText.WriteString(strings.TrimSpace(text))
	}

	if pageCount < 1 {
		// The extractor could not report a page count; the contract
		// guarantees at least one page on success.
		pageCount = 1
	}

	return &Result{
		Text:  strings.TrimSpace(allText.String()),
		Pages: pageCount,
		Info:  documentInfo(pdfReader),
	}, nil
}

// documentInfo pulls title/author metadata from the trailer when present.
func documentInfo(r *pdf.Reader) map[string]string {
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return nil
	}

	meta := make(map[string]string)
	for _, key := range []string{"Title", "Author", "Creator", "Producer"} {
		v := info.Key(key)
		if v.IsNull() {
			continue
		}
		if s := strings.TrimSpace(v.RawString()); s != "" {
			meta[key] = s
		}
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
