package cmd

import (
	"os"

	"github.com/abhisek/matheqs/internal/equations"
	"github.com/abhisek/matheqs/internal/render"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"list-equations"},
	Short:   "List well-known equations that work well as input",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := render.NewTerminal(os.Stdout)
		t.Header("MathEqs", "Popular physics equations")
		t.List("Try one of these", equations.Catalog())
		t.List("Usage examples", []string{
			`matheqs explain "F = ma" --difficulty beginner`,
			`matheqs history "Schrödinger's Equation"`,
			`matheqs analyze "Wave Equation" --markdown wave.md`,
		})
	},
}
