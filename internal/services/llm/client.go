// Package llm wraps the OpenAI-compatible chat completions client used by
// the summarizer and predictor services.
//
// We point the sashabaranov/go-openai client at OpenRouter by default —
// one API key covers many upstream model providers, and the request format
// is the standard chat completions shape either way.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is the OpenRouter chat completions endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("model API key not configured; set OPENROUTER_API_KEY")

// ChatCompleter is the slice of the go-openai client the services need.
// Go Pattern: accept interfaces, return structs — tests substitute a fake
// completer without any network.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client issues prompt/response round trips against one configured model.
type Client struct {
	completer ChatCompleter
	model     string
	timeout   time.Duration
}

// New creates a client for the given API key and model. An empty baseURL
// falls back to OpenRouter. An empty apiKey yields a client whose calls
// fail with ErrNotConfigured.
func New(apiKey, model, baseURL string) *Client {
	if apiKey == "" {
		return &Client{model: model}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL

	return &Client{
		completer: openai.NewClientWithConfig(cfg),
		model:     model,
		timeout:   2 * time.Minute,
	}
}

// NewWithCompleter builds a client around an existing completer. Used by
// tests and anywhere a pre-built client should be shared.
func NewWithCompleter(c ChatCompleter, model string) *Client {
	return &Client{completer: c, model: model, timeout: 2 * time.Minute}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Configured reports whether the client can reach a model.
func (c *Client) Configured() bool {
	return c.completer != nil && c.model != ""
}

// Complete sends one system+user prompt pair and returns the raw content
// of the first choice. No retries: transport errors propagate to the
// caller, which decides the failure kind.
func (c *Client) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// ExtractJSON removes markdown code-block formatting if present and trims
// the content down to the outermost JSON object. Models regularly wrap
// their JSON in ```json fences or surrounding prose.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		// Skip past the opening ``` and optional language identifier.
		start := 3
		if newlineIdx := strings.Index(content[start:], "\n"); newlineIdx != -1 {
			start += newlineIdx + 1
		}
		if endIdx := strings.Index(content[start:], "```"); endIdx != -1 {
			content = content[start : start+endIdx]
		} else {
			content = content[start:]
		}
	}

	content = strings.TrimSpace(content)

	// Trim to the first { and last } so prose around the object is dropped.
	if startIdx := strings.Index(content, "{"); startIdx != -1 {
		if endIdx := strings.LastIndex(content, "}"); endIdx != -1 && endIdx > startIdx {
			content = content[startIdx : endIdx+1]
		}
	}

	return strings.TrimSpace(content)
}
