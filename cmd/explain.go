package cmd

import (
	"github.com/abhisek/matheqs/internal/equations"
	"github.com/abhisek/matheqs/internal/render"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <equation>",
	Short: "Explain a physics equation",
	Long: "Explain a physics equation at the chosen difficulty level. The equation\n" +
		"can be given as a formula (\"F = ma\") or a well-known name (\"Newton's\n" +
		"Second Law\").",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		context, _ := cmd.Flags().GetString("context")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		mdPath, _ := cmd.Flags().GetString("markdown")

		req, err := equations.NewRequest(args[0], name, context, difficulty)
		if err != nil {
			return err
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		s.term.Header("MathEqs", "Explaining: "+req.Title())
		s.term.Progress("Generating explanation...")

		ctx, cancel := s.timeout(cmd.Context(), 1)
		defer cancel()

		exp, err := s.explainer.Explain(ctx, req)
		if err != nil {
			return err
		}

		s.term.Explanation(exp)

		if mdPath != "" {
			if err := render.WriteMarkdown(mdPath, render.ExplanationDocument(exp)); err != nil {
				return err
			}
			s.term.Saved(mdPath)
		}
		return nil
	},
}

func init() {
	explainCmd.Flags().StringP("name", "n", "", "Display name for the equation")
	explainCmd.Flags().StringP("context", "c", "", "Additional context to steer the explanation")
	explainCmd.Flags().StringP("difficulty", "d", "intermediate", "Difficulty level: beginner, intermediate, or advanced")
	explainCmd.Flags().StringP("markdown", "m", "", "Also save the explanation to a markdown file at this path")
}
