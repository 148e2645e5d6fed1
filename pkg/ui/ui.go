// Package ui renders command results as styled terminal output, plain text
// or JSON.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/gcroots/pkg/ui/json"
	"github.com/arthur-debert/gcroots/pkg/ui/terminal"
	"github.com/arthur-debert/gcroots/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a roots.Status or roots.Registration
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format, resolving FormatAuto against output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
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
