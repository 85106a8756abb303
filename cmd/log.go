package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/matheqs/internal/llm"
	"github.com/abhisek/matheqs/internal/store"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect the LLM request log",
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.RequestLog().Recent(cmd.Context(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
		})
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No requests logged yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				shortID(e.ID),
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.Purpose,
				e.Model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				okMark(e.Success),
			)
		}
		return w.Flush()
	},
}

var logViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one logged request in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		e, err := st.RequestLog().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("no logged request matches %q", args[0])
		}

		fmt.Printf("ID:        %s\n", e.ID)
		fmt.Printf("When:      %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}
		if c := llm.LookupCost(e.Model); c != nil {
			fmt.Printf("Est. cost: %s\n", formatCost(c.Cost(e.InputTokens, e.OutputTokens)))
		}
		fmt.Printf("\nRequest:\n%s\n", e.RequestBody)
		if e.ResponseBody != "" {
			fmt.Printf("\nResponse:\n%s\n", truncate(e.ResponseBody, 2000))
		}
		return nil
	},
}

var logStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate token usage and estimated cost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		byPurpose, err := st.RequestLog().UsageByPurpose(cmd.Context())
		if err != nil {
			return err
		}
		byModel, err := st.RequestLog().UsageByModel(cmd.Context())
		if err != nil {
			return err
		}
		if len(byPurpose) == 0 {
			fmt.Println("No requests logged yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PURPOSE\tCALLS\tIN\tOUT\tAVG MS")
		for _, u := range byPurpose {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "MODEL\tCALLS\tIN\tOUT\tEST COST")
		for _, u := range byModel {
			cost := "n/a"
			if c := llm.LookupCost(u.Model); c != nil {
				cost = formatCost(c.Cost(u.InputTokens, u.OutputTokens))
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
				u.Model, u.Calls, u.InputTokens, u.OutputTokens, cost)
		}
		return w.Flush()
	},
}

func init() {
	logListCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
	logListCmd.Flags().String("purpose", "", "Only show entries with this purpose (explain, history, derivation, analyze)")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logViewCmd)
	logCmd.AddCommand(logStatsCmd)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func okMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "…"
}
