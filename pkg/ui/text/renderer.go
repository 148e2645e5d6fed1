// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/gcroots/pkg/roots"
)

// Styles decorates fragments of the layout. The zero value leaves text as is.
type Styles struct {
	Label func(...string) string
	Path  func(...string) string
	Good  func(...string) string
	Bad   func(...string) string
	Muted func(...string) string
}

func apply(f func(...string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	styles Styles
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return NewStyled(output, Styles{})
}

// NewStyled creates a renderer that lays out results like New but passes
// each fragment through styles
func NewStyled(output io.Writer, styles Styles) *Renderer {
	return &Renderer{output: output, styles: styles}
}

// RenderResult renders a roots.Status or roots.Registration
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case roots.Status:
		return r.renderStatus(v)
	case *roots.Status:
		return r.renderStatus(*v)
	case roots.Registration:
		return r.renderRegistration(v)
	case *roots.Registration:
		return r.renderRegistration(*v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) line(label, value string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", apply(r.styles.Label, fmt.Sprintf("%-8s", label)), value)
	return err
}

func (r *Renderer) link(from, to string) string {
	return apply(r.styles.Path, from) + " -> " + apply(r.styles.Path, to)
}

func (r *Renderer) linkStatus(ls roots.LinkStatus) string {
	switch {
	case !ls.Present:
		return apply(r.styles.Path, ls.Path.String()) + " " + apply(r.styles.Muted, "(missing)")
	case !ls.IsSymlink:
		return apply(r.styles.Path, ls.Path.String()) + " " + apply(r.styles.Bad, "(not a symlink)")
	default:
		return r.link(ls.Path.String(), ls.Target)
	}
}

func (r *Renderer) renderStatus(st roots.Status) error {
	global := apply(r.styles.Bad, "(user not set)")
	if st.Global != nil {
		global = r.linkStatus(*st.Global)
	}

	state := apply(r.styles.Bad, "not registered")
	if st.Registered {
		state = apply(r.styles.Good, "registered")
	}
	output := apply(r.styles.Bad, "missing")
	if st.Exists {
		output = apply(r.styles.Good, "present")
	}

	for _, l := range [][2]string{
		{"project", st.ProjectID},
		{"local", r.linkStatus(st.Local)},
		{"global", global},
		{"root", state},
		{"output", output},
	} {
		if err := r.line(l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderRegistration(reg roots.Registration) error {
	local := reg.Output.ShellGCRoot.Path.String()
	for _, l := range [][2]string{
		{"project", reg.ProjectID},
		{"local", r.link(local, reg.Target.String())},
		{"global", r.link(reg.Global.String(), local)},
		{"root", apply(r.styles.Good, "registered")},
	} {
		if err := r.line(l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", apply(r.styles.Bad, "Error:"), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
