// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/gcroots/pkg/ui/text"
)

// New creates a renderer with the text layout and lipgloss styling
func New(w io.Writer) *text.Renderer {
	return text.NewStyled(w, text.Styles{
		Label: LabelStyle.Render,
		Path:  PathStyle.Render,
		Good:  SuccessStyle.Render,
		Bad:   ErrorStyle.Render,
		Muted: MutedStyle.Render,
	})
}
