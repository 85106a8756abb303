package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command against the mock provider and a
// throwaway database, capturing all cobra output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("MATHEQS_LLM_PROVIDER", "mock")
	t.Setenv("MATHEQS_DB", filepath.Join(t.TempDir(), "log.db"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	_ = Execute()
	return out.String()
}

func TestExecute_ValidationErrorShowsUsage(t *testing.T) {
	out := runCLI(t, "explain", "")

	if !strings.Contains(out, "invalid equation") {
		t.Errorf("missing validation message, got: %s", out)
	}
	if !strings.Contains(out, "Usage:") {
		t.Error("bad input should be followed by the usage block")
	}
}

func TestExecute_BadDifficultyShowsUsage(t *testing.T) {
	out := runCLI(t, "analyze", "Wave Equation", "--difficulty", "expert")

	if !strings.Contains(out, "invalid difficulty") {
		t.Errorf("missing validation message, got: %s", out)
	}
	if !strings.Contains(out, "Usage:") {
		t.Error("bad input should be followed by the usage block")
	}
}

func TestExecute_ServiceErrorHidesUsage(t *testing.T) {
	// The mock provider has an empty response queue, so the call fails
	// like an unreachable provider.
	out := runCLI(t, "explain", "F = ma")

	if !strings.Contains(out, "explain request failed") {
		t.Errorf("missing service error message, got: %s", out)
	}
	if strings.Contains(out, "Usage:") {
		t.Error("provider failures should report only the error, not usage")
	}
}
