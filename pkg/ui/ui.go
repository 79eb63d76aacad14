// Package ui renders command results for people and machines.
// It supports terminal (styled), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/reactspring/pkg/ui/json"
	"github.com/arthur-debert/reactspring/pkg/ui/terminal"
	"github.com/arthur-debert/reactspring/pkg/ui/text"
	"github.com/arthur-debert/reactspring/pkg/ui/view"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderSummary reports a generated (or planned) project
	RenderSummary(summary view.Summary) error

	// RenderCatalog lists the template variants found under a root
	RenderCatalog(catalog view.Catalog) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved
// against output with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
