package equations

import (
	"fmt"
	"strings"
)

const explainSystemPrompt = `You are an expert physics teacher. Explain equations clearly and accurately. Use plain text or simple LaTeX for math; never invent history or attribution you are not sure of.`

// difficultyInstructions tunes the requested depth per level.
var difficultyInstructions = map[Difficulty]string{
	Beginner:     "Aim at a reader with no physics background. Avoid calculus; use everyday analogies.",
	Intermediate: "Aim at an undergraduate reader. Basic calculus and vector notation are fine.",
	Advanced:     "Aim at a graduate-level reader. Use full mathematical rigor and name the relevant formalism.",
}

func buildExplainUserMessage(req ExplanationRequest) string {
	var b strings.Builder

	b.WriteString("Explain the following physics equation in detail:\n\n")
	b.WriteString(fmt.Sprintf("Equation Name: %s\n", req.Title()))
	b.WriteString(fmt.Sprintf("Equation: %s\n", req.Equation))
	if req.Context != "" {
		b.WriteString(fmt.Sprintf("Context: %s\n", req.Context))
	}
	b.WriteString(fmt.Sprintf("Difficulty: %s. %s\n", req.Difficulty, difficultyInstructions[req.Difficulty]))

	b.WriteString(`
Provide a comprehensive explanation with:
- simple_explanation: a beginner-friendly explanation of what the equation says
- detailed_explanation: a more technical explanation with deeper insights
- real_world_example: practical applications of this equation
- key_concepts: the important concepts related to this equation`)

	return b.String()
}

// Preset contexts reused by the history, derivation, and analyze commands.
// Each steers the same explanation schema toward a different aspect.
const (
	historyContext = "Provide historical information about this equation including discoverer, " +
		"year discovered, historical context, and modern applications."

	derivationContext = "Provide a detailed mathematical derivation of this equation, including " +
		"the starting principles, key assumptions, step-by-step derivation steps, and limitations."

	introductionContext = "Provide a comprehensive introduction to this equation, including its " +
		"overview, significance, and the field of physics it belongs to."

	applicationsContext = "Provide modern applications and practical uses of this equation in " +
		"technology, engineering, and science."
)
