package cmd

import (
	"github.com/abhisek/matheqs/internal/equations"
	"github.com/abhisek/matheqs/internal/render"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <equation-name>",
	Short: "Generate a comprehensive multi-section analysis",
	Long: "Generate a four-part report on an equation: introduction, historical\n" +
		"background, mathematical derivation, and modern applications. Each part\n" +
		"is a separate model call; sections that fail are reported as warnings.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		mdPath, _ := cmd.Flags().GetString("markdown")

		level, err := equations.ParseDifficulty(difficulty)
		if err != nil {
			return &equations.ValidationError{
				Field:  "difficulty",
				Reason: "must be one of beginner, intermediate, advanced",
			}
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		s.term.Header("MathEqs", "Comprehensive analysis: "+args[0])

		ctx, cancel := s.timeout(cmd.Context(), 4)
		defer cancel()

		analysis, err := s.explainer.Analyze(ctx, args[0], level, func(section string) {
			s.term.Progress("Generating " + section + "...")
		})
		if err != nil {
			return err
		}

		s.term.Analysis(analysis)

		if mdPath != "" {
			if err := render.WriteMarkdown(mdPath, render.AnalysisDocument(analysis)); err != nil {
				return err
			}
			s.term.Saved(mdPath)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("difficulty", "d", "intermediate", "Difficulty level: beginner, intermediate, or advanced")
	analyzeCmd.Flags().StringP("markdown", "m", "", "Also save the analysis to a markdown file at this path")
}
