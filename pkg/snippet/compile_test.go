package snippet

import (
	"testing"

	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_StringSnippet(t *testing.T) {
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "mk",
		Replacement: Replacement{Text: "$$0$"},
		Options:     "tA",
		Priority:    1,
		Description: "inline math",
	})
	require.NoError(t, err)

	assert.Equal(t, TypeString, compiled.Type)
	assert.Equal(t, "mk", compiled.Trigger)
	assert.Nil(t, compiled.Pattern)
	assert.Equal(t, float64(1), compiled.Priority)
	assert.Equal(t, "inline math", compiled.Description)
	assert.True(t, compiled.Options.Auto)
	assert.NotNil(t, compiled.ExcludedEnvironments)
	assert.Empty(t, compiled.ExcludedEnvironments)
}

func TestCompile_RegexViaOption(t *testing.T) {
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "abc",
		Replacement: Replacement{Text: "x"},
		Options:     "rm",
	})
	require.NoError(t, err)

	assert.Equal(t, TypeRegex, compiled.Type)
	assert.Equal(t, "abc$", compiled.Trigger)
	require.NotNil(t, compiled.Pattern)
	assert.True(t, compiled.Options.Regex)

	// Anchored: must end exactly at the input position.
	assert.True(t, compiled.Pattern.MatchString("xabc"))
	assert.False(t, compiled.Pattern.MatchString("abcx"))
}

func TestCompile_RegexViaRegexTrigger(t *testing.T) {
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		TriggerRegex: &RegexTrigger{Source: "ABC", Flags: "i"},
		Replacement:  Replacement{Text: "x"},
		Options:      "m",
		Flags:        "mi",
	})
	require.NoError(t, err)

	assert.Equal(t, TypeRegex, compiled.Type)
	// Regex trigger forces the regex option even when "r" was absent.
	assert.True(t, compiled.Options.Regex)
	// Own flags merged with declared flags, then deduplicated.
	assert.Equal(t, "im", compiled.Flags)
	assert.True(t, compiled.Pattern.MatchString("xyzabc"))
}

func TestCompile_FlagSanitation(t *testing.T) {
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "abc",
		Replacement: Replacement{Text: "x"},
		Options:     "r",
		Flags:       "ggimis d",
	})
	require.NoError(t, err)
	assert.Equal(t, "ims", compiled.Flags)
}

func TestCompile_RegexVariableSubstitution(t *testing.T) {
	vars, err := NormalizeVariables(map[string]string{"GREEK": "alpha|beta|gamma"})
	require.NoError(t, err)

	c := NewCompiler(vars)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "(${GREEK})bar",
		Replacement: Replacement{Text: "\\$1 bar"},
		Options:     "rm",
	})
	require.NoError(t, err)

	assert.Equal(t, "(alpha|beta|gamma)bar$", compiled.Trigger)
	assert.True(t, compiled.Pattern.MatchString("betabar"))
	assert.False(t, compiled.Pattern.MatchString("deltabar"))
}

func TestCompile_LiteralVariableSubstitution(t *testing.T) {
	vars, err := NormalizeVariables(map[string]string{"${a}": "x"})
	require.NoError(t, err)

	c := NewCompiler(vars)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "${a}bar",
		Replacement: Replacement{Text: "y"},
		Options:     "m",
	})
	require.NoError(t, err)
	assert.Equal(t, "xbar", compiled.Trigger)
}

func TestCompile_InvalidRegexFails(t *testing.T) {
	c := NewCompiler(nil)
	_, err := c.Compile(RawSnippet{
		Trigger:     "(*",
		Replacement: Replacement{Text: "x"},
		Options:     "r",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegexInvalid))
}

func TestCompile_VisualByOption(t *testing.T) {
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "U",
		Replacement: Replacement{Text: "\\underbrace{${VISUAL}}_{$0}"},
		Options:     "mv",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeVisual, compiled.Type)
}

func TestCompile_VisualByPlaceholderDetection(t *testing.T) {
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "tt",
		Replacement: Replacement{Text: "\\text{" + VisualPlaceholder + "}"},
		Options:     "m", // visual bit not set
	})
	require.NoError(t, err)
	assert.Equal(t, TypeVisual, compiled.Type)
	assert.True(t, compiled.Options.Visual)
}

func TestCompile_RegexWinsOverVisualPlaceholder(t *testing.T) {
	// Classification order: regex-or-not first, placeholder detection only
	// within the literal branch.
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "vv",
		Replacement: Replacement{Text: VisualPlaceholder},
		Options:     "rv",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeRegex, compiled.Type)
}

func TestCompile_ExclusionsResolvedOnPreAnchorText(t *testing.T) {
	c := NewCompiler(nil)

	// Literal trigger present verbatim in the exclusion table.
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "->",
		Replacement: Replacement{Text: "\\to"},
		Options:     "m",
	})
	require.NoError(t, err)
	require.Len(t, compiled.ExcludedEnvironments, 1)
	assert.Equal(t, "\\ce{", compiled.ExcludedEnvironments[0].OpenSymbol)

	// Regex trigger: the exclusion key is the pattern before the anchor.
	compiled, err = c.Compile(RawSnippet{
		Trigger:     `([A-Za-z])(\d)`,
		Replacement: Replacement{Text: "$1_{$2}"},
		Options:     "rm",
	})
	require.NoError(t, err)
	require.Len(t, compiled.ExcludedEnvironments, 1)
	assert.Equal(t, "\\pu{", compiled.ExcludedEnvironments[0].OpenSymbol)
}

func TestCompile_CaseInsensitiveFlagApplied(t *testing.T) {
	c := NewCompiler(nil)
	compiled, err := c.Compile(RawSnippet{
		Trigger:     "abc",
		Replacement: Replacement{Text: "x"},
		Options:     "r",
		Flags:       "i",
	})
	require.NoError(t, err)
	assert.True(t, compiled.Pattern.MatchString("xABC"))
}
