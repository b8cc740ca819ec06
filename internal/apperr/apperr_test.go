// apperr_test.go — Unit tests for the kind-tagged error type.
package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "validation error",
			err:  New(Validation, "empty input"),
			want: Validation,
		},
		{
			name: "wrapped extraction error",
			err:  Wrap(Extraction, "failed to open PDF", errors.New("bad xref")),
			want: Extraction,
		},
		{
			name: "kind survives further wrapping",
			err:  fmt.Errorf("request failed: %w", New(Prediction, "schema mismatch")),
			want: Prediction,
		},
		{
			name: "plain error has no kind",
			err:  errors.New("boom"),
			want: "",
		},
		{
			name: "nil error has no kind",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := New(Validation, "Syllabus and past papers content are required.")
		if err.Error() != "Syllabus and past papers content are required." {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("message with cause", func(t *testing.T) {
		err := Wrap(Summarization, "failed to summarize syllabus", errors.New("status 500"))
		want := "failed to summarize syllabus: status 500"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Summarization, "failed to summarize syllabus", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not see through the wrapper to the cause")
	}
}
