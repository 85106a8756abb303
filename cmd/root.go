package cmd

import (
	"errors"

	"github.com/abhisek/matheqs/internal/equations"
	"github.com/abhisek/matheqs/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matheqs [equation]",
	Short: "AI-powered physics equation explainer",
	Long: "MathEqs explains any physics equation with AI: plain-language and technical\n" +
		"explanations, historical background, and mathematical derivations.",
	Args: cobra.MaximumNArgs(1),
	// Usage is printed selectively in Execute: bad input gets the usage
	// block, provider and file failures report just the message.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A bare equation argument runs the full walkthrough:
		// explanation, then history, then derivation.
		if len(args) == 1 {
			return runFullWalkthrough(cmd, args[0])
		}
		return cmd.Help()
	},
}

func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		var verr *equations.ValidationError
		if errors.As(err, &verr) {
			cmd.PrintErrln(cmd.UsageString())
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the request-log SQLite file (overrides MATHEQS_DB env var)")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(derivationCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the request-log path using --db flag (highest
// priority), then MATHEQS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
