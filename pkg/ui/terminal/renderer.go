// Package terminal provides styled terminal output
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/reactspring/pkg/ui/styles"
	"github.com/arthur-debert/reactspring/pkg/ui/text"
	"github.com/arthur-debert/reactspring/pkg/ui/view"
)

// Renderer provides colored output using the shared style registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderSummary renders the project summary with sections and styled labels
func (r *Renderer) RenderSummary(s view.Summary) error {
	var blocks []string

	if s.DryRun {
		blocks = append(blocks, styles.Render("DryRunBanner",
			fmt.Sprintf("Dry run: %s would be created in %s", s.Project, s.Destination)))
	} else {
		blocks = append(blocks, styles.Render("Header",
			fmt.Sprintf("✓ Created %s in %s", s.Project, styles.Render("FilePath", s.Destination))))
	}

	rows := make([]string, 0, len(s.Stack))
	for _, f := range s.Stack {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Render("Label", f.Label), styles.Render("Value", f.Value)))
	}
	blocks = append(blocks, section("Stack", rows))

	if !s.DryRun {
		blocks = append(blocks, section("Files", []string{styles.Render("Muted", text.CountsLine(s.Counts))}))
	}

	if len(s.Injected) > 0 {
		added := make([]string, len(s.Injected))
		for i, p := range s.Injected {
			added[i] = styles.Render("FilePath", p)
		}
		blocks = append(blocks, section("Added", added))
	}

	if len(s.NextSteps) > 0 {
		steps := make([]string, len(s.NextSteps))
		for i, step := range s.NextSteps {
			steps[i] = styles.Render("Command", step)
		}
		blocks = append(blocks, section("Next steps", steps))
	}

	_, err := fmt.Fprintln(r.output, strings.Join(blocks, "\n\n"))
	return err
}

// RenderCatalog renders the template variants grouped by side
func (r *Renderer) RenderCatalog(c view.Catalog) error {
	blocks := []string{
		styles.Render("Header", "Templates in "+styles.Render("FilePath", c.Root)),
		section("Frontends", items(c.Frontends)),
		section("Backends", items(c.Backends)),
	}
	_, err := fmt.Fprintln(r.output, strings.Join(blocks, "\n\n"))
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.Render("Error", "✗ Error: ")+err.Error())
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Info", msg))
	return err
}

func section(title string, lines []string) string {
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = "  " + line
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{styles.Render("Section", title)}, indented...)...)
}

func items(values []string) []string {
	if len(values) == 0 {
		return []string{styles.Render("Muted", "(none)")}
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "• " + v
	}
	return out
}
