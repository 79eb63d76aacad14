// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/reactspring/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderSummary prints the project summary as indented plain text
func (r *Renderer) RenderSummary(s view.Summary) error {
	var b strings.Builder
	if s.DryRun {
		fmt.Fprintf(&b, "Dry run: would create %s in %s\n", s.Project, s.Destination)
	} else {
		fmt.Fprintf(&b, "Created %s in %s\n", s.Project, s.Destination)
	}

	b.WriteString("\nStack\n")
	for _, f := range s.Stack {
		fmt.Fprintf(&b, "  %-14s%s\n", f.Label, f.Value)
	}

	if !s.DryRun {
		b.WriteString("\nFiles\n")
		fmt.Fprintf(&b, "  %s\n", CountsLine(s.Counts))
	}

	if len(s.Injected) > 0 {
		b.WriteString("\nAdded\n")
		for _, p := range s.Injected {
			fmt.Fprintf(&b, "  %s\n", p)
		}
	}

	if len(s.NextSteps) > 0 {
		b.WriteString("\nNext steps\n")
		for _, step := range s.NextSteps {
			fmt.Fprintf(&b, "  %s\n", step)
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderCatalog prints the template variants one per line
func (r *Renderer) RenderCatalog(c view.Catalog) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Templates in %s\n", c.Root)
	writeList(&b, "Frontends", c.Frontends)
	writeList(&b, "Backends", c.Backends)
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// CountsLine summarises counts in one sentence
func CountsLine(c view.Counts) string {
	return fmt.Sprintf("%d directories, %d text files, %d binary files (%d relocated)",
		c.Directories, c.TextFiles, c.BinaryFiles, c.Relocated)
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "\n%s\n", title)
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "  %s\n", item)
	}
}
