package cmd

import (
	"github.com/abhisek/matheqs/internal/equations"
	"github.com/spf13/cobra"
)

// runFullWalkthrough handles "matheqs <equation>": a full tour of the
// equation as three sequential calls covering explanation, history, and
// derivation.
func runFullWalkthrough(cmd *cobra.Command, equation string) error {
	req, err := equations.NewRequest(equation, "", "", "")
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.term.Header("MathEqs", "Full walkthrough: "+req.Title())

	ctx, cancel := s.timeout(cmd.Context(), 3)
	defer cancel()

	s.term.Progress("Generating explanation...")
	exp, err := s.explainer.Explain(ctx, req)
	if err != nil {
		return err
	}
	s.term.Explanation(exp)

	s.term.Progress("Generating historical background...")
	hist, err := s.explainer.History(ctx, equation)
	if err != nil {
		return err
	}
	if err := renderNarrative(s, hist, historySections(hist), ""); err != nil {
		return err
	}

	s.term.Progress("Generating derivation...")
	deriv, err := s.explainer.Derivation(ctx, equation)
	if err != nil {
		return err
	}
	return renderNarrative(s, deriv, derivationSections(deriv), "")
}
