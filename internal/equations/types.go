package equations

import (
	"fmt"
	"strings"
)

// Difficulty controls how technical the requested explanation should be.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists the recognized levels in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// ParseDifficulty parses a user-supplied difficulty string. Matching is
// case-insensitive with surrounding whitespace ignored; the empty string
// parses to Intermediate.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Intermediate, nil
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "advanced":
		return Advanced, nil
	default:
		return "", fmt.Errorf("unrecognized difficulty %q", s)
	}
}

func (d Difficulty) String() string { return string(d) }

// ExplanationRequest is a validated request for an equation explanation.
// Build one with NewRequest; a zero value is not valid.
type ExplanationRequest struct {
	Equation   string
	Name       string
	Context    string
	Difficulty Difficulty
}

// Title returns the display name for the request: the equation's name when
// given, the equation itself otherwise.
func (r ExplanationRequest) Title() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Equation
}

// Explanation is the structured result of one explanation call.
type Explanation struct {
	Name             string
	Equation         string
	Difficulty       Difficulty
	Simple           string
	Detailed         string
	RealWorldExample string
	KeyConcepts      []string
}

// Analysis is the four-section report produced by Analyze.
type Analysis struct {
	Name         string
	Introduction string
	History      string
	Derivation   string
	Applications string

	// Warnings lists sections that could not be generated.
	Warnings []string
}

// ValidationError reports bad or missing CLI input. Not retryable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ServiceError reports a failure of the external explanation service.
type ServiceError struct {
	Op  string // explain, history, derivation, analyze
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
