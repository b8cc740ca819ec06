// Package analyzer orchestrates one analysis run: summarize the syllabus,
// predict questions from the past papers, derive the topic distribution.
//
// The two model calls are strictly sequential — the predictor consumes the
// summarizer's output. Any stage failing aborts the whole run; a partial
// result is never returned, and an already-obtained summary is not kept
// when prediction fails.
package analyzer

import (
	"context"

	"github.com/prepwise/exam-prep-api/internal/apperr"
	"github.com/prepwise/exam-prep-api/internal/models"
)

// Summarizer produces the syllabus summary. Satisfied by
// summarizer.Service; tests substitute a fake.
type Summarizer interface {
	Summarize(ctx context.Context, syllabusText string) (*models.SyllabusSummary, error)
}

// QuestionPredictor produces the predicted questions. Satisfied by
// predictor.Service.
type QuestionPredictor interface {
	Predict(ctx context.Context, topic, previousQuestions string) (*models.PredictionOutput, error)
}

// Service runs the analysis pipeline. Each call is independent — no state
// is shared between concurrent analyses.
type Service struct {
	summarizer Summarizer
	predictor  QuestionPredictor
}

// New creates an analyzer over the two model-backed stages.
func New(s Summarizer, p QuestionPredictor) *Service {
	return &Service{summarizer: s, predictor: p}
}

// Analyze validates the inputs, runs summarizer then predictor, and
// aggregates the topic distribution. Input validation happens before any
// external call; stage errors propagate unchanged.
func (s *Service) Analyze(ctx context.Context, syllabusText, papersText string) (*models.AnalysisResult, error) {
	if syllabusText == "" || papersText == "" {
		return nil, apperr.New(apperr.Validation, "Syllabus and past papers content are required.")
	}

	summary, err := s.summarizer.Summarize(ctx, syllabusText)
	if err != nil {
		return nil, err
	}
	if summary.Summary == "" {
		// A blank summary is a hard failure, not an empty result — the
		// predictor would have no topic context to work with.
		return nil, apperr.New(apperr.Summarization, "Failed to summarize syllabus. Please check the content.")
	}

	prediction, err := s.predictor.Predict(ctx, summary.Summary, papersText)
	if err != nil {
		return nil, err
	}

	return &models.AnalysisResult{
		SyllabusSummary:    summary.Summary,
		PredictedQuestions: prediction.Questions,
		TopicDistribution:  TopicCounts(prediction.Questions),
	}, nil
}

// TopicCounts partitions questions by exact topic string (case-sensitive,
// no normalization). Entries appear in first-appearance order of each
// distinct topic, so the output is deterministic for a given prediction.
func TopicCounts(questions []models.PredictedQuestion) []models.TopicDistribution {
	counts := make(map[string]int, len(questions))
	order := make([]string, 0, len(questions))

	for _, q := range questions {
		if _, seen := counts[q.Topic]; !seen {
			order = append(order, q.Topic)
		}
		counts[q.Topic]++
	}

	distribution := make([]models.TopicDistribution, 0, len(order))
	for _, topic := range order {
		distribution = append(distribution, models.TopicDistribution{
			Topic: topic,
			Count: counts[topic],
		})
	}
	return distribution
}
