package equations

import "github.com/abhisek/matheqs/internal/llm"

// ExplanationSchema defines the JSON schema for equation explanations.
// Every command reuses it; the preset contexts steer what the fields hold.
var ExplanationSchema = &llm.Schema{
	Name:        "equation-explanation",
	Description: "A structured explanation of a physics equation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"simple_explanation": map[string]any{
				"type":        "string",
				"description": "Beginner-friendly explanation of what the equation says",
			},
			"detailed_explanation": map[string]any{
				"type":        "string",
				"description": "Technical explanation with deeper insights",
			},
			"real_world_example": map[string]any{
				"type":        "string",
				"description": "Practical applications of the equation",
			},
			"key_concepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Important concepts related to the equation",
			},
		},
		"required": []any{
			"simple_explanation", "detailed_explanation",
			"real_world_example", "key_concepts",
		},
		"additionalProperties": false,
	},
}
