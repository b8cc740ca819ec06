// schema_test.go — Tests for JSON Schema validation of model responses.
package llm

import (
	"strings"
	"testing"
)

const testSchema = `{
	"type": "object",
	"required": ["summary"],
	"properties": {
		"summary": {"type": "string"},
		"count": {"type": "integer"}
	}
}`

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		// substring the error message must carry, "" when no error
		wantMsg string
	}{
		{
			name: "valid document",
			doc:  `{"summary": "topics", "count": 3}`,
		},
		{
			name:    "missing required field",
			doc:     `{"count": 3}`,
			wantErr: true,
			wantMsg: "summary",
		},
		{
			name:    "wrong field type",
			doc:     `{"summary": 42}`,
			wantErr: true,
			wantMsg: "summary",
		},
		{
			name:    "not json",
			doc:     `summary: topics`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(testSchema, tt.doc)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected a validation error")
				}
				if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
					t.Errorf("error %q does not name field %q", err, tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSchemaEnum(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {
			"difficulty": {"type": "string", "enum": ["Easy", "Medium", "Hard"]}
		}
	}`

	if err := ValidateSchema(schema, `{"difficulty": "Medium"}`); err != nil {
		t.Errorf("valid enum rejected: %v", err)
	}
	if err := ValidateSchema(schema, `{"difficulty": "Impossible"}`); err == nil {
		t.Error("invalid enum value accepted")
	}
}
