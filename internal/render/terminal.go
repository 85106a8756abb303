package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/matheqs/internal/equations"
)

// Terminal renders explanations as styled sections on a writer,
// usually os.Stdout.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a terminal presenter writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Header prints a title line with an optional dimmed subtitle.
func (t *Terminal) Header(title, subtitle string) {
	fmt.Fprintln(t.w, titleStyle.Render(title))
	if subtitle != "" {
		fmt.Fprintln(t.w, subtitleStyle.Render(subtitle))
	}
	fmt.Fprintln(t.w)
}

// Section prints one titled body block.
func (t *Terminal) Section(title, body string) {
	fmt.Fprintln(t.w, sectionStyle.Render(title))
	fmt.Fprintln(t.w, sectionStyle.Render(strings.Repeat("─", len([]rune(title)))))
	fmt.Fprintln(t.w, body)
	fmt.Fprintln(t.w)
}

// Explanation prints a full explanation: equation line plus the four
// standard sections.
func (t *Terminal) Explanation(exp *equations.Explanation) {
	t.Section("Equation", equationStyle.Render(exp.Name)+"\n"+exp.Equation)
	t.Section("Simple Explanation", exp.Simple)
	t.Section("Detailed Explanation", exp.Detailed)
	t.Section("Real-World Example", exp.RealWorldExample)
	t.Section("Key Concepts", strings.Join(exp.KeyConcepts, ", "))
}

// Analysis prints the four-section report, then any warnings.
func (t *Terminal) Analysis(a *equations.Analysis) {
	t.Section("Introduction", a.Introduction)
	t.Section("History", a.History)
	t.Section("Derivation", a.Derivation)
	t.Section("Applications", a.Applications)

	for _, w := range a.Warnings {
		fmt.Fprintln(t.w, hintStyle.Render("⚠ "+w))
	}
	if len(a.Warnings) > 0 {
		fmt.Fprintln(t.w)
	}
}

// List prints a titled bullet list.
func (t *Terminal) List(title string, items []string) {
	fmt.Fprintln(t.w, sectionStyle.Render(title))
	for _, item := range items {
		fmt.Fprintf(t.w, "  • %s\n", item)
	}
	fmt.Fprintln(t.w)
}

// Progress prints a transient status line.
func (t *Terminal) Progress(msg string) {
	fmt.Fprintln(t.w, hintStyle.Render("⏳ "+msg))
}

// Saved reports a successful file write.
func (t *Terminal) Saved(path string) {
	fmt.Fprintf(t.w, "✓ Markdown file saved to: %s\n", path)
}
