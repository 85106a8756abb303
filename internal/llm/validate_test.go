package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-answer",
		Description: "A structured answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{"type": "string"},
				"score":  map[string]any{"type": "integer"},
			},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer": "42", "score": 3}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score": 3}`)
	err := validateResponse(testSchema(), raw)

	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %v", err)
	}
	if string(inv.Content) != string(raw) {
		t.Error("error should carry the offending content")
	}
}

func TestValidateResponse_ExtraProperty(t *testing.T) {
	raw := json.RawMessage(`{"answer": "42", "bonus": true}`)
	var inv *ErrInvalidResponse
	if err := validateResponse(testSchema(), raw); !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`I am not JSON`)
	var inv *ErrInvalidResponse
	if err := validateResponse(testSchema(), raw); !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything goes`)); err != nil {
		t.Errorf("nil schema should skip validation: %v", err)
	}
}

func TestGetCompiledSchema_Caches(t *testing.T) {
	s := testSchema()

	first, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	second, err := getCompiledSchema(s)
	if err != nil {
		t.Fatalf("second compile failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached compiled schema on the second call")
	}
}
