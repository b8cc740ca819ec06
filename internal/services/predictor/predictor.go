// Package predictor generates the ten predicted exam questions.
//
// The prompt weighs the past-paper questions over the syllabus summary:
// recurring themes, formats, and the numerical-vs-theoretical ratio come
// from the papers; the summary only supplies topic labels. The 10-question
// count and the 4/4/2 difficulty split are instructed to the model, and
// schema validation checks shape and enum values — the counts themselves
// are deliberately not enforced locally.
package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/prepwise/exam-prep-api/internal/apperr"
	"github.com/prepwise/exam-prep-api/internal/models"
	"github.com/prepwise/exam-prep-api/internal/services/llm"
)

const systemPrompt = "You are an expert exam question creator. You analyze past papers to predict upcoming exam questions and always respond with valid JSON."

// responseSchema validates each question's shape, including the
// difficulty enum. Array length is instructed, not enforced.
const responseSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "difficulty", "topic"],
				"properties": {
					"question": {"type": "string"},
					"difficulty": {"type": "string", "enum": ["Easy", "Medium", "Hard"]},
					"topic": {"type": "string"}
				}
			}
		}
	}
}`

// Service generates predicted questions.
type Service struct {
	client *llm.Client
}

// New creates a predictor backed by the given model client.
func New(client *llm.Client) *Service {
	return &Service{client: client}
}

// Predict asks the model for ten predicted questions given the syllabus
// summary (topic context) and the combined past-paper text. Transport and
// schema failures surface as a Prediction error.
func (s *Service) Predict(ctx context.Context, topic, previousQuestions string) (*models.PredictionOutput, error) {
	prompt := buildPrompt(topic, previousQuestions)

	log.Printf("🤖 Predicting questions from %d chars of past papers using %s",
		len(previousQuestions), s.client.Model())

	content, err := s.client.Complete(ctx, systemPrompt, prompt, 0.4)
	if err != nil {
		return nil, apperr.Wrap(apperr.Prediction, "failed to predict questions", err)
	}

	doc := llm.ExtractJSON(content)
	if err := llm.ValidateSchema(responseSchema, doc); err != nil {
		return nil, apperr.Wrap(apperr.Prediction, "prediction response failed validation", err)
	}

	var output models.PredictionOutput
	if err := json.Unmarshal([]byte(doc), &output); err != nil {
		return nil, apperr.Wrap(apperr.Prediction, "failed to decode prediction response", err)
	}

	return &output, nil
}

// buildPrompt carries the five-step analysis instruction. Past papers are
// the primary source; the syllabus summary is secondary context used to
// label topics.
func buildPrompt(topic, previousQuestions string) string {
	return fmt.Sprintf(`Your primary task is to analyze a list of questions from past papers to predict 10 highly probable questions for the upcoming exam. Give more weight to the past papers than the syllabus.

Follow these steps:
1. Prioritize Past Papers Analysis: Deeply analyze the provided past paper questions. Your main focus should be here. Identify recurring themes, question formats (e.g., definition, problem-solving, case study), and topics that are most frequently tested. Note if past questions include numerical problems, as this is a key indicator.
2. Use Syllabus for Context Only: Briefly review the syllabus summary to understand the broader context, but the topics and trends from the past papers are more important. Use the syllabus mainly to correctly label the topic for the questions you generate.
3. Identify High-Probability Topics: Based on your analysis of the past papers, determine which topics have the highest probability of appearing again. Focus on these high-frequency areas.
4. Recall Similar Questions: For the high-probability topics you identified, recall similar questions or recent applications to help you create fresh but relevant questions.
5. Generate Questions: Based on your analysis, generate 10 new questions.
   - The mix of numerical vs. theoretical questions should strongly reflect the mix found in the past papers. This is a critical instruction.
   - Ensure a mix of difficulties: 4 Easy, 4 Medium, and 2 Hard.
   - The questions must be clear and directly relevant to the topics found in the past papers.
   - For each question, specify the topic it relates to.

Past Paper Questions (Primary Source):
%s

Syllabus Topics (Secondary Context):
%s

Respond with valid JSON in this exact format:
{
  "questions": [
    {"question": "The predicted exam question", "difficulty": "Easy", "topic": "The topic label"}
  ]
}

The difficulty of each question must be exactly one of "Easy", "Medium", or "Hard". Generate the 10 predicted questions now.`, previousQuestions, topic)
}
