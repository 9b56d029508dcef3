package display

import (
	"bytes"
	"testing"

	"github.com/snipforge/snipforge/pkg/catalog"
	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/snipforge/snipforge/pkg/snippet"
	"github.com/stretchr/testify/assert"
)

func TestRenderList_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "never", false)

	r.RenderList([]snippet.CompiledSnippet{
		{
			Type:        snippet.TypeString,
			Trigger:     "mk",
			Replacement: snippet.Replacement{Text: "$$0$"},
			Priority:    2,
		},
		{
			Type:        snippet.TypeRegex,
			Trigger:     "abc$",
			Replacement: snippet.Replacement{Func: func(string, []string) string { return "" }},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "2 snippets compiled")
	assert.Contains(t, out, "[string] mk -> $$0$")
	assert.Contains(t, out, "(priority 2)")
	assert.Contains(t, out, "[regex] abc$ -> <function>")
	// No ANSI escapes in never mode.
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderList_Exclusions(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "never", true)

	r.RenderList([]snippet.CompiledSnippet{
		{
			Type:        snippet.TypeString,
			Trigger:     "->",
			Replacement: snippet.Replacement{Text: "\\to"},
			ExcludedEnvironments: []catalog.Environment{
				{OpenSymbol: "\\ce{", CloseSymbol: "}"},
			},
		},
	})

	assert.Contains(t, buf.String(), "not in \\ce{...}")
}

func TestRenderList_NewlinesEscaped(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "never", false)

	r.RenderList([]snippet.CompiledSnippet{
		{
			Type:        snippet.TypeString,
			Trigger:     "dm",
			Replacement: snippet.Replacement{Text: "$$\n$0\n$$"},
		},
	})

	assert.Contains(t, buf.String(), `$$\n$0\n$$`)
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "never", false)
	r.RenderError(errors.New(errors.ErrLoadFailed, "boom"))

	assert.Contains(t, buf.String(), "compilation failed")
	assert.Contains(t, buf.String(), "[LOAD_FAILED] boom")
}
