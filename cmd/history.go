package cmd

import (
	"strings"

	"github.com/abhisek/matheqs/internal/equations"
	"github.com/abhisek/matheqs/internal/render"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <equation-name>",
	Short: "Explain the historical background of an equation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mdPath, _ := cmd.Flags().GetString("markdown")

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		s.term.Header("MathEqs", "History of: "+args[0])
		s.term.Progress("Generating historical background...")

		ctx, cancel := s.timeout(cmd.Context(), 1)
		defer cancel()

		exp, err := s.explainer.History(ctx, args[0])
		if err != nil {
			return err
		}

		return renderNarrative(s, exp, historySections(exp), mdPath)
	},
}

func init() {
	historyCmd.Flags().StringP("markdown", "m", "", "Also save the result to a markdown file at this path")
}

func historySections(exp *equations.Explanation) []render.MarkdownSection {
	return []render.MarkdownSection{
		{Title: "Overview", Body: exp.Simple},
		{Title: "Historical Development", Body: exp.Detailed},
		{Title: "Modern Applications", Body: exp.RealWorldExample},
		{Title: "Key Concepts", Body: strings.Join(exp.KeyConcepts, ", ")},
	}
}

// renderNarrative prints a history or derivation result using the given
// section titles and optionally writes the markdown version.
func renderNarrative(s *session, exp *equations.Explanation, sections []render.MarkdownSection, mdPath string) error {
	for _, sec := range sections {
		s.term.Section(sec.Title, sec.Body)
	}
	if mdPath != "" {
		doc := render.MarkdownDocument(exp.Name, exp.Equation, sections)
		if err := render.WriteMarkdown(mdPath, doc); err != nil {
			return err
		}
		s.term.Saved(mdPath)
	}
	return nil
}
