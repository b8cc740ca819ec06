// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// There is no ORM here — results live only for the duration of one
// analysis request/response cycle and are never persisted.
package models

// Difficulty is the difficulty label attached to a predicted question.
// Go Pattern: We use string constants instead of enums (Go doesn't have enums).
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the three known difficulty labels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// SyllabusSummary is the output of the syllabus summarization step.
// Immutable once produced; the summary feeds the predictor as topic context.
type SyllabusSummary struct {
	Summary string `json:"summary"`
	// Progress is a short one-sentence note describing that the
	// summarization step ran.
	Progress string `json:"progress"`
}

// PredictedQuestion is one predicted exam question. Topic is free text,
// not a controlled vocabulary — duplicate topics across questions are
// expected and drive the distribution aggregate.
type PredictedQuestion struct {
	Question   string     `json:"question"`
	Difficulty Difficulty `json:"difficulty"`
	Topic      string     `json:"topic"`
}

// PredictionOutput is the structured response of the question predictor.
// The contract asks the model for exactly ten questions (4 Easy, 4 Medium,
// 2 Hard); the length is instructed, not locally enforced.
type PredictionOutput struct {
	Questions []PredictedQuestion `json:"questions"`
}

// TopicDistribution is the per-topic count of predicted questions.
// Derived, never independently created: counts sum to the number of
// predicted questions.
type TopicDistribution struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// AnalysisResult is the combined output of one analysis run.
// Transient — exists only for one request/response cycle.
type AnalysisResult struct {
	SyllabusSummary    string              `json:"syllabus_summary"`
	PredictedQuestions []PredictedQuestion `json:"predicted_questions"`
	TopicDistribution  []TopicDistribution `json:"topic_distribution"`
}

// --- Request/Response DTOs ---
// Go Pattern: Separate structs for API input/output vs internal types.
// This keeps the API contract explicit.

// AnalyzeRequest is the JSON body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	SyllabusText string `json:"syllabus_text"`
	PapersText   string `json:"papers_text"`
}

// ExtractionResponse echoes a PDF extraction back to the client.
// The parser's Info metadata is intentionally not exposed over HTTP.
type ExtractionResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Pages    int    `json:"pages"`
}

// BatchExtractionResponse is the response for POST /api/v1/pdf/extract-batch.
// Files holds the per-file results in upload order; CombinedText is the
// delimiter-joined fold of all extracted texts, also in upload order.
type BatchExtractionResponse struct {
	Files        []ExtractionResponse `json:"files"`
	CombinedText string               `json:"combined_text"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Model     string `json:"model"`
	PDFEngine string `json:"pdf_engine"`
}
