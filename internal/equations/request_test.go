package equations

import (
	"errors"
	"testing"
)

func TestNewRequest_Valid(t *testing.T) {
	req, err := NewRequest("F = ma", "Newton's Second Law", "classical mechanics", "beginner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Equation != "F = ma" {
		t.Errorf("equation = %q", req.Equation)
	}
	if req.Name != "Newton's Second Law" {
		t.Errorf("name = %q", req.Name)
	}
	if req.Difficulty != Beginner {
		t.Errorf("difficulty = %q, want beginner", req.Difficulty)
	}
	if req.Title() != "Newton's Second Law" {
		t.Errorf("title = %q", req.Title())
	}
}

func TestNewRequest_EmptyEquation(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NewRequest(input, "", "", "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("input %q: expected *ValidationError, got %v", input, err)
		}
		if verr.Field != "equation" {
			t.Errorf("input %q: field = %q, want equation", input, verr.Field)
		}
	}
}

func TestNewRequest_BadDifficulty(t *testing.T) {
	_, err := NewRequest("F = ma", "", "", "expert")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "difficulty" {
		t.Errorf("field = %q, want difficulty", verr.Field)
	}
}

func TestNewRequest_DefaultsToIntermediate(t *testing.T) {
	req, err := NewRequest("E = mc^2", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Difficulty != Intermediate {
		t.Errorf("difficulty = %q, want intermediate", req.Difficulty)
	}
}

func TestNewRequest_TrimsInput(t *testing.T) {
	req, err := NewRequest("  F = ma  ", "  Newton  ", "  forces  ", "advanced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Equation != "F = ma" || req.Name != "Newton" || req.Context != "forces" {
		t.Errorf("fields not trimmed: %+v", req)
	}
}

func TestTitle_FallsBackToEquation(t *testing.T) {
	req, err := NewRequest("PV = nRT", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title() != "PV = nRT" {
		t.Errorf("title = %q, want equation itself", req.Title())
	}
}

func TestParseDifficulty_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
	}{
		{"beginner", Beginner},
		{"BEGINNER", Beginner},
		{"Intermediate", Intermediate},
		{" advanced ", Advanced},
		{"", Intermediate},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if err != nil {
			t.Errorf("ParseDifficulty(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
