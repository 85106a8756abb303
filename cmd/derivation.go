package cmd

import (
	"strings"

	"github.com/abhisek/matheqs/internal/equations"
	"github.com/abhisek/matheqs/internal/render"
	"github.com/spf13/cobra"
)

var derivationCmd = &cobra.Command{
	Use:   "derivation <equation-name>",
	Short: "Show the mathematical derivation of an equation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mdPath, _ := cmd.Flags().GetString("markdown")

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		s.term.Header("MathEqs", "Derivation of: "+args[0])
		s.term.Progress("Generating derivation...")

		ctx, cancel := s.timeout(cmd.Context(), 1)
		defer cancel()

		exp, err := s.explainer.Derivation(ctx, args[0])
		if err != nil {
			return err
		}

		return renderNarrative(s, exp, derivationSections(exp), mdPath)
	},
}

func init() {
	derivationCmd.Flags().StringP("markdown", "m", "", "Also save the result to a markdown file at this path")
}

func derivationSections(exp *equations.Explanation) []render.MarkdownSection {
	return []render.MarkdownSection{
		{Title: "Starting Principles", Body: exp.Simple},
		{Title: "Derivation Steps", Body: exp.Detailed},
		{Title: "Assumptions and Limitations", Body: exp.RealWorldExample},
		{Title: "Key Concepts", Body: strings.Join(exp.KeyConcepts, ", ")},
	}
}
