package equations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/matheqs/internal/llm"
)

// Explainer turns ExplanationRequests into Explanations by calling the
// configured LLM provider with structured output.
type Explainer struct {
	provider llm.Provider
	cfg      Config
}

// NewExplainer creates an explanation service on top of the given provider.
func NewExplainer(provider llm.Provider, cfg Config) *Explainer {
	return &Explainer{provider: provider, cfg: cfg}
}

// explanationOutput mirrors ExplanationSchema.
type explanationOutput struct {
	Simple      string   `json:"simple_explanation"`
	Detailed    string   `json:"detailed_explanation"`
	RealWorld   string   `json:"real_world_example"`
	KeyConcepts []string `json:"key_concepts"`
}

// Explain runs a single blocking explanation call for the given request.
func (e *Explainer) Explain(ctx context.Context, req ExplanationRequest) (*Explanation, error) {
	return e.generate(ctx, "explain", req)
}

// History explains the historical background of a named equation.
func (e *Explainer) History(ctx context.Context, name string) (*Explanation, error) {
	req, err := NewRequest(name, name, historyContext, "")
	if err != nil {
		return nil, err
	}
	return e.generate(ctx, "history", req)
}

// Derivation explains the mathematical derivation of a named equation.
func (e *Explainer) Derivation(ctx context.Context, name string) (*Explanation, error) {
	req, err := NewRequest(name, name, derivationContext, "")
	if err != nil {
		return nil, err
	}
	return e.generate(ctx, "derivation", req)
}

// Analyze produces the four-section report (introduction, history,
// derivation, applications) with one service call per section. A failed
// section is recorded as a warning; Analyze fails only when every section
// fails. progress, when non-nil, is called with each section name before
// its call starts.
func (e *Explainer) Analyze(ctx context.Context, name string, difficulty Difficulty, progress func(section string)) (*Analysis, error) {
	sections := []struct {
		label   string
		context string
		assign  func(*Analysis, string)
	}{
		{"introduction", introductionContext, func(a *Analysis, s string) { a.Introduction = s }},
		{"history", historyContext, func(a *Analysis, s string) { a.History = s }},
		{"derivation", derivationContext, func(a *Analysis, s string) { a.Derivation = s }},
		{"applications", applicationsContext, func(a *Analysis, s string) { a.Applications = s }},
	}

	analysis := &Analysis{Name: name}
	var lastErr error
	failed := 0

	for _, sec := range sections {
		if progress != nil {
			progress(sec.label)
		}

		req, err := NewRequest(name, name, sec.context, string(difficulty))
		if err != nil {
			return nil, err
		}

		exp, err := e.generate(ctx, "analyze", req)
		if err != nil {
			analysis.Warnings = append(analysis.Warnings,
				fmt.Sprintf("could not generate %s: %v", sec.label, err))
			lastErr = err
			failed++
			continue
		}

		sec.assign(analysis, exp.Simple+"\n\n"+exp.Detailed)
	}

	if failed == len(sections) {
		return nil, &ServiceError{Op: "analyze", Err: lastErr}
	}
	return analysis, nil
}

func (e *Explainer) generate(ctx context.Context, purpose string, req ExplanationRequest) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(req)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, &ServiceError{Op: purpose, Err: err}
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ServiceError{Op: purpose, Err: fmt.Errorf("parse response: %w", err)}
	}

	return &Explanation{
		Name:             req.Title(),
		Equation:         req.Equation,
		Difficulty:       req.Difficulty,
		Simple:           out.Simple,
		Detailed:         out.Detailed,
		RealWorldExample: out.RealWorld,
		KeyConcepts:      out.KeyConcepts,
	}, nil
}
