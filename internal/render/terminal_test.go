package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abhisek/matheqs/internal/equations"
)

func TestTerminal_Explanation(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Explanation(sampleExplanation())
	out := buf.String()

	for _, want := range []string{
		"Newton's Second Law",
		"F = ma",
		"Simple Explanation",
		"Detailed Explanation",
		"Real-World Example",
		"Key Concepts",
		"force, mass, acceleration",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTerminal_AnalysisWarnings(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Analysis(&equations.Analysis{
		Name:         "Wave Equation",
		Introduction: "intro",
		Warnings:     []string{"could not generate history: provider unavailable"},
	})
	out := buf.String()

	if !strings.Contains(out, "could not generate history") {
		t.Error("warnings should be printed")
	}
	if !strings.Contains(out, "⚠") {
		t.Error("warnings should be marked")
	}
}

func TestTerminal_SectionUnderline(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.Section("Overview", "body")
	out := buf.String()

	// Underline matches the title length in runes.
	if !strings.Contains(out, strings.Repeat("─", len("Overview"))) {
		t.Error("missing underline")
	}
}

func TestTerminal_ListAndSaved(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.List("Equations", []string{"F = ma", "E = mc^2"})
	term.Saved("/tmp/out.md")
	out := buf.String()

	if !strings.Contains(out, "• F = ma") {
		t.Error("missing bullet item")
	}
	if !strings.Contains(out, "✓ Markdown file saved to: /tmp/out.md") {
		t.Error("missing saved line")
	}
}
