package equations

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/matheqs/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"simple_explanation": "Force equals mass times acceleration.",
		"detailed_explanation": "The net force on a body equals the time derivative of its momentum; for constant mass this reduces to F = ma.",
		"real_world_example": "A rocket accelerates as its engines push exhaust backwards.",
		"key_concepts": ["force", "mass", "acceleration"]
	}`)
}

func TestExplainer_Explain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewExplainer(mock, DefaultConfig())

	req, err := NewRequest("F = ma", "Newton's Second Law", "", "beginner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp, err := svc.Explain(t.Context(), req)
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	if exp.Simple != "Force equals mass times acceleration." {
		t.Errorf("simple = %q", exp.Simple)
	}
	if exp.Name != "Newton's Second Law" {
		t.Errorf("name = %q", exp.Name)
	}
	if exp.Equation != "F = ma" {
		t.Errorf("equation = %q", exp.Equation)
	}
	if len(exp.KeyConcepts) != 3 {
		t.Errorf("key concepts = %v", exp.KeyConcepts)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.Schema != ExplanationSchema {
		t.Error("expected the explanation schema on the request")
	}
	if !strings.Contains(call.Messages[0].Content, "F = ma") {
		t.Error("prompt should carry the equation")
	}
}

func TestExplainer_ExplainWrapsProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	})
	svc := NewExplainer(mock, DefaultConfig())

	req, _ := NewRequest("F = ma", "", "", "")
	_, err := svc.Explain(t.Context(), req)

	var serr *ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
	if serr.Op != "explain" {
		t.Errorf("op = %q, want explain", serr.Op)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Error("cause should unwrap to the provider error")
	}
}

func TestExplainer_ExplainRejectsBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewExplainer(mock, DefaultConfig())

	req, _ := NewRequest("F = ma", "", "", "")
	if _, err := svc.Explain(t.Context(), req); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExplainer_HistoryUsesPresetContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewExplainer(mock, DefaultConfig())

	if _, err := svc.History(t.Context(), "Wave Equation"); err != nil {
		t.Fatalf("History failed: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "historical") {
		t.Errorf("prompt should ask for history, got: %s", msg)
	}
}

func TestExplainer_DerivationUsesPresetContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewExplainer(mock, DefaultConfig())

	if _, err := svc.Derivation(t.Context(), "Wave Equation"); err != nil {
		t.Fatalf("Derivation failed: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "derivation") {
		t.Errorf("prompt should ask for a derivation, got: %s", msg)
	}
}

func TestExplainer_AnalyzeAllSections(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Content: validExplanationJSON()},
	)
	svc := NewExplainer(mock, DefaultConfig())

	var seen []string
	analysis, err := svc.Analyze(t.Context(), "Wave Equation", Intermediate, func(section string) {
		seen = append(seen, section)
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := []string{"introduction", "history", "derivation", "applications"}
	if len(seen) != len(want) {
		t.Fatalf("progress sections = %v", seen)
	}
	for i, s := range want {
		if seen[i] != s {
			t.Errorf("section %d = %q, want %q", i, seen[i], s)
		}
	}

	if analysis.Introduction == "" || analysis.History == "" ||
		analysis.Derivation == "" || analysis.Applications == "" {
		t.Error("all four sections should be filled")
	}
	if len(analysis.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", analysis.Warnings)
	}
}

func TestExplainer_AnalyzePartialFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Content: validExplanationJSON()},
	)
	svc := NewExplainer(mock, DefaultConfig())

	analysis, err := svc.Analyze(t.Context(), "Wave Equation", Intermediate, nil)
	if err != nil {
		t.Fatalf("Analyze should tolerate one failed section: %v", err)
	}

	if len(analysis.Warnings) != 1 {
		t.Fatalf("warnings = %v", analysis.Warnings)
	}
	if !strings.Contains(analysis.Warnings[0], "history") {
		t.Errorf("warning should name the failed section: %q", analysis.Warnings[0])
	}
	if analysis.History != "" {
		t.Error("failed section should stay empty")
	}
	if analysis.Introduction == "" {
		t.Error("successful sections should still be filled")
	}
}

func TestExplainer_AnalyzeTotalFailure(t *testing.T) {
	fail := llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}
	mock := llm.NewMockProvider(fail, fail, fail, fail)
	svc := NewExplainer(mock, DefaultConfig())

	_, err := svc.Analyze(t.Context(), "Wave Equation", Intermediate, nil)

	var serr *ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ServiceError when every section fails, got %v", err)
	}
	if serr.Op != "analyze" {
		t.Errorf("op = %q, want analyze", serr.Op)
	}
}
