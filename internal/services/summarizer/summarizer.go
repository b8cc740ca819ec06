// Package summarizer turns raw syllabus text into a topical summary.
//
// One prompt, one model call, no retries. The response must match the
// declared JSON schema (a required summary string plus an execution note);
// anything else is a summarization failure for this request.
package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/prepwise/exam-prep-api/internal/apperr"
	"github.com/prepwise/exam-prep-api/internal/models"
	"github.com/prepwise/exam-prep-api/internal/services/llm"
)

const systemPrompt = "You are an expert academic assistant. You summarize syllabi into concise topic overviews and always respond with valid JSON."

// responseSchema is the shape the model must answer with.
const responseSchema = `{
	"type": "object",
	"required": ["summary"],
	"properties": {
		"summary": {"type": "string"},
		"progress": {"type": "string"}
	}
}`

// progressNote is the fixed one-line execution note attached when the
// model omits its own.
const progressNote = "The syllabus topics have been summarized."

// Service generates syllabus summaries.
type Service struct {
	client *llm.Client
}

// New creates a summarizer backed by the given model client.
func New(client *llm.Client) *Service {
	return &Service{client: client}
}

// Summarize sends the syllabus text to the model and returns the topical
// summary. All failures — transport, empty choices, schema — surface as
// a Summarization error and abort the caller's pipeline.
func (s *Service) Summarize(ctx context.Context, syllabusText string) (*models.SyllabusSummary, error) {
	prompt := buildPrompt(syllabusText)

	log.Printf("🤖 Summarizing syllabus (%d chars) using %s", len(syllabusText), s.client.Model())

	content, err := s.client.Complete(ctx, systemPrompt, prompt, 0.2)
	if err != nil {
		return nil, apperr.Wrap(apperr.Summarization, "failed to summarize syllabus", err)
	}

	doc := llm.ExtractJSON(content)
	if err := llm.ValidateSchema(responseSchema, doc); err != nil {
		return nil, apperr.Wrap(apperr.Summarization, "summary response failed validation", err)
	}

	var summary models.SyllabusSummary
	if err := json.Unmarshal([]byte(doc), &summary); err != nil {
		return nil, apperr.Wrap(apperr.Summarization, "failed to decode summary response", err)
	}

	if summary.Progress == "" {
		summary.Progress = progressNote
	}

	return &summary, nil
}

// buildPrompt embeds the syllabus text verbatim — no truncation, the
// summary must cover every section.
func buildPrompt(syllabusText string) string {
	return fmt.Sprintf(`Your task is to summarize the core concepts of each section of a given syllabus.

Syllabus Text:
%s

Provide a concise summary of the main topics covered in the syllabus, highlighting key areas of study and focus.

Respond with valid JSON in this exact format:
{
  "summary": "Your summary of the core concepts of each section",
  "progress": "A short, one-sentence note that the summarization step ran"
}`, syllabusText)
}
