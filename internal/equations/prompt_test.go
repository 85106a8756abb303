package equations

import (
	"strings"
	"testing"
)

func TestBuildExplainUserMessage(t *testing.T) {
	req, err := NewRequest("F = ma", "Newton's Second Law", "rocketry", "beginner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := buildExplainUserMessage(req)

	if !strings.Contains(msg, "Equation Name: Newton's Second Law") {
		t.Error("missing equation name")
	}
	if !strings.Contains(msg, "Equation: F = ma") {
		t.Error("missing equation")
	}
	if !strings.Contains(msg, "Context: rocketry") {
		t.Error("missing context")
	}
	if !strings.Contains(msg, "Difficulty: beginner") {
		t.Error("missing difficulty")
	}
	if !strings.Contains(msg, "no physics background") {
		t.Error("missing beginner instruction")
	}
	for _, field := range []string{"simple_explanation", "detailed_explanation", "real_world_example", "key_concepts"} {
		if !strings.Contains(msg, field) {
			t.Errorf("missing output field hint %q", field)
		}
	}
}

func TestBuildExplainUserMessage_NoContextLine(t *testing.T) {
	req, err := NewRequest("E = mc^2", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := buildExplainUserMessage(req)

	if strings.Contains(msg, "Context:") {
		t.Error("context line should be omitted when no context is given")
	}
	if !strings.Contains(msg, "Equation Name: E = mc^2") {
		t.Error("name should fall back to the equation")
	}
}

func TestDifficultyInstructions_AllLevelsCovered(t *testing.T) {
	for _, d := range Difficulties {
		if difficultyInstructions[d] == "" {
			t.Errorf("no instruction for difficulty %q", d)
		}
	}
}
