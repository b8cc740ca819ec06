// client_test.go — Tests for the chat client wrapper and JSON extraction.
package llm

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// fakeCompleter is a canned ChatCompleter for tests — no network.
type fakeCompleter struct {
	content string
	err     error
	// lastRequest records what the client sent.
	lastRequest openai.ChatCompletionRequest
	calls       int
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.lastRequest = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func TestCompleteReturnsContent(t *testing.T) {
	fake := &fakeCompleter{content: `{"summary": "ok"}`}
	client := NewWithCompleter(fake, "test-model")

	got, err := client.Complete(context.Background(), "system", "user", 0.2)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != `{"summary": "ok"}` {
		t.Errorf("Complete = %q", got)
	}

	if fake.lastRequest.Model != "test-model" {
		t.Errorf("request model = %q, want %q", fake.lastRequest.Model, "test-model")
	}
	if len(fake.lastRequest.Messages) != 2 {
		t.Fatalf("request carried %d messages, want 2", len(fake.lastRequest.Messages))
	}
	if fake.lastRequest.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message role = %q, want system", fake.lastRequest.Messages[0].Role)
	}
}

func TestCompleteTransportError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection refused")}
	client := NewWithCompleter(fake, "test-model")

	_, err := client.Complete(context.Background(), "s", "u", 0)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestCompleteNoChoices(t *testing.T) {
	// A completer that answers with zero choices.
	client := NewWithCompleter(emptyCompleter{}, "test-model")

	_, err := client.Complete(context.Background(), "s", "u", 0)
	if err == nil {
		t.Fatal("expected an error for empty choices")
	}
}

type emptyCompleter struct{}

func (emptyCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}

func TestCompleteNotConfigured(t *testing.T) {
	client := New("", "model", "")

	if client.Configured() {
		t.Error("keyless client reports configured")
	}
	if _, err := client.Complete(context.Background(), "s", "u", 0); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare json",
			content: `{"summary": "topics"}`,
			want:    `{"summary": "topics"}`,
		},
		{
			name:    "json fenced with language",
			content: "```json\n{\"summary\": \"topics\"}\n```",
			want:    `{"summary": "topics"}`,
		},
		{
			name:    "json fenced without language",
			content: "```\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "prose around the object",
			content: "Here is the result:\n{\"a\": 1}\nHope that helps!",
			want:    `{"a": 1}`,
		},
		{
			name:    "unterminated fence",
			content: "```json\n{\"a\": 1}",
			want:    `{"a": 1}`,
		},
		{
			name:    "nested braces survive",
			content: "x {\"a\": {\"b\": 2}} y",
			want:    `{"a": {"b": 2}}`,
		},
		{
			name:    "no json at all",
			content: "sorry, I cannot do that",
			want:    "sorry, I cannot do that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.content); got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
