package snippet

import (
	"regexp"
	"strings"

	"github.com/snipforge/snipforge/pkg/catalog"
	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/snipforge/snipforge/pkg/logging"
)

// Compiler turns validated raw snippets into compiled, matchable records.
type Compiler struct {
	variables *Variables
}

// NewCompiler creates a compiler over the given variable set. A nil set is
// treated as empty.
func NewCompiler(variables *Variables) *Compiler {
	if variables == nil {
		variables = NewVariables()
	}
	return &Compiler{variables: variables}
}

// Compile classifies a raw snippet into one of the three variants and
// produces the compiled record. The regex branch is checked first: a regex
// trigger containing the visual placeholder is never treated as visual.
func (c *Compiler) Compile(raw RawSnippet) (CompiledSnippet, error) {
	logger := logging.GetLogger("snippet.compiler")
	options := ParseOptions(raw.Options)

	if options.Regex || raw.TriggerRegex != nil {
		compiled, err := c.compileRegex(raw, options)
		if err != nil {
			return CompiledSnippet{}, err
		}
		logger.Debug().
			Str("type", string(compiled.Type)).
			Str("pattern", compiled.Trigger).
			Str("flags", compiled.Flags).
			Msg("compiled regex snippet")
		return compiled, nil
	}

	compiled := c.compileLiteral(raw, options)
	logger.Debug().
		Str("type", string(compiled.Type)).
		Str("trigger", compiled.Trigger).
		Msg("compiled literal snippet")
	return compiled, nil
}

func (c *Compiler) compileRegex(raw RawSnippet, options Options) (CompiledSnippet, error) {
	pattern := raw.Trigger
	merged := raw.Flags
	if raw.TriggerRegex != nil {
		pattern = raw.TriggerRegex.Source
		merged = raw.TriggerRegex.Flags + raw.Flags
	}

	flags := SanitizeFlags(merged)
	pattern = c.variables.Substitute(pattern)

	// Exclusions key off the pattern text before the end anchor is added.
	excluded := catalog.ResolveExclusions(pattern)

	// Anchor so a match must end exactly at the current input position.
	anchored := pattern + "$"

	source := anchored
	if inline := compileFlags(flags); inline != "" {
		source = "(?" + inline + ")" + anchored
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return CompiledSnippet{}, errors.Wrapf(err, errors.ErrRegexInvalid,
			"invalid trigger pattern %q", pattern)
	}

	options.Regex = true
	return CompiledSnippet{
		Type:                 TypeRegex,
		Trigger:              anchored,
		Pattern:              re,
		Flags:                flags,
		Replacement:          raw.Replacement,
		Options:              options,
		Priority:             raw.Priority,
		Description:          raw.Description,
		ExcludedEnvironments: excluded,
	}, nil
}

func (c *Compiler) compileLiteral(raw RawSnippet, options Options) CompiledSnippet {
	trigger := c.variables.Substitute(raw.Trigger)
	excluded := catalog.ResolveExclusions(trigger)

	if !raw.Replacement.IsFunc() && strings.Contains(raw.Replacement.Text, VisualPlaceholder) {
		options.Visual = true
	}

	variant := TypeString
	if options.Visual {
		variant = TypeVisual
	}

	return CompiledSnippet{
		Type:                 variant,
		Trigger:              trigger,
		Replacement:          raw.Replacement,
		Options:              options,
		Priority:             raw.Priority,
		Description:          raw.Description,
		ExcludedEnvironments: excluded,
	}
}
