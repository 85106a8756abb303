package equations

import "strings"

// NewRequest validates raw CLI input and builds an ExplanationRequest.
// It has no side effects; on bad input it returns a *ValidationError.
func NewRequest(equation, name, context, difficulty string) (ExplanationRequest, error) {
	equation = strings.TrimSpace(equation)
	if equation == "" {
		return ExplanationRequest{}, &ValidationError{
			Field:  "equation",
			Reason: "must not be empty",
		}
	}

	level, err := ParseDifficulty(difficulty)
	if err != nil {
		return ExplanationRequest{}, &ValidationError{
			Field:  "difficulty",
			Reason: "must be one of beginner, intermediate, advanced",
		}
	}

	return ExplanationRequest{
		Equation:   equation,
		Name:       strings.TrimSpace(name),
		Context:    strings.TrimSpace(context),
		Difficulty: level,
	}, nil
}
