package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/matheqs/internal/equations"
)

// FileError reports a failed markdown file write. It always carries the
// target path.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// MarkdownSection is one titled block of a markdown document. Sections are
// a slice, not a map, so document order is deterministic.
type MarkdownSection struct {
	Title string
	Body  string
}

// MarkdownDocument assembles a markdown document with a title, the equation
// in a code block, and one H2 section per entry.
func MarkdownDocument(title, equation string, sections []MarkdownSection) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", title))
	if equation != "" {
		b.WriteString(fmt.Sprintf("```\n%s\n```\n\n", equation))
	}

	for _, s := range sections {
		b.WriteString(fmt.Sprintf("## %s\n\n", s.Title))
		b.WriteString(s.Body)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("---\n\n*Generated by matheqs on %s*\n",
		time.Now().Format("2006-01-02")))

	return b.String()
}

// ExplanationDocument renders an explanation as a markdown document.
func ExplanationDocument(exp *equations.Explanation) string {
	return MarkdownDocument(exp.Name, exp.Equation, []MarkdownSection{
		{Title: "Simple Explanation", Body: exp.Simple},
		{Title: "Detailed Explanation", Body: exp.Detailed},
		{Title: "Real-World Example", Body: exp.RealWorldExample},
		{Title: "Key Concepts", Body: strings.Join(exp.KeyConcepts, ", ")},
	})
}

// AnalysisDocument renders a four-section analysis as a markdown document.
func AnalysisDocument(a *equations.Analysis) string {
	return MarkdownDocument("Comprehensive Analysis: "+a.Name, a.Name, []MarkdownSection{
		{Title: "Introduction", Body: a.Introduction},
		{Title: "History", Body: a.History},
		{Title: "Derivation", Body: a.Derivation},
		{Title: "Applications", Body: a.Applications},
	})
}

// WriteMarkdown writes content to path, creating the file with 0644.
// Failures come back as a *FileError naming the path.
func WriteMarkdown(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}
