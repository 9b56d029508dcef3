// Package display renders compiled snippet listings for the CLI.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/snipforge/snipforge/pkg/snippet"
	"github.com/snipforge/snipforge/pkg/style"
)

// Local bindings keep the render code terse.
var (
	titleStyle       = style.TitleStyle
	triggerStyle     = style.TriggerStyle
	variantStyle     = style.VariantStyle
	mutedStyle       = style.MutedStyle
	errorStyle       = style.ErrorStyle
	replacementStyle = style.ReplacementStyle
)

// Renderer writes human-readable snippet listings.
type Renderer struct {
	out            io.Writer
	color          bool
	showExclusions bool
}

// NewRenderer creates a renderer for the given writer. colorMode is
// "auto", "always" or "never"; auto enables color only when the writer is
// a terminal.
func NewRenderer(out io.Writer, colorMode string, showExclusions bool) *Renderer {
	color := false
	switch colorMode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		if f, ok := out.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd()) && termenv.EnvColorProfile() != termenv.Ascii
		}
	}
	return &Renderer{out: out, color: color, showExclusions: showExclusions}
}

// RenderList writes one line per compiled snippet, highest priority first
// (the slice is expected to be pre-sorted by the pipeline).
func (r *Renderer) RenderList(snippets []snippet.CompiledSnippet) {
	fmt.Fprintln(r.out, r.styled(titleStyle, fmt.Sprintf("%d snippets compiled", len(snippets))))

	for _, s := range snippets {
		replacement := s.Replacement.Text
		if s.Replacement.IsFunc() {
			replacement = "<function>"
		}
		replacement = strings.ReplaceAll(replacement, "\n", "\\n")

		line := fmt.Sprintf("  %s %s -> %s",
			r.styled(variantStyle, fmt.Sprintf("[%s]", s.Type)),
			r.styled(triggerStyle, s.Trigger),
			r.styled(replacementStyle, replacement))
		if s.Priority != 0 {
			line += r.styled(mutedStyle, fmt.Sprintf(" (priority %g)", s.Priority))
		}
		fmt.Fprintln(r.out, line)

		if r.showExclusions && len(s.ExcludedEnvironments) > 0 {
			for _, env := range s.ExcludedEnvironments {
				fmt.Fprintln(r.out, r.styled(mutedStyle,
					fmt.Sprintf("      not in %s...%s", env.OpenSymbol, env.CloseSymbol)))
			}
		}
	}
}

// RenderError writes a compilation failure.
func (r *Renderer) RenderError(err error) {
	fmt.Fprintln(r.out, r.styled(errorStyle, "compilation failed: ")+err.Error())
}

func (r *Renderer) styled(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}
