// Package snippet implements the snippet data model and the compilation
// pipeline that turns user-authored declarations into matchable rules for
// the expansion engine.
package snippet

import (
	"regexp"

	"github.com/snipforge/snipforge/pkg/catalog"
)

// Type tags the closed set of compiled snippet variants.
type Type string

const (
	// TypeString matches its trigger by literal comparison.
	TypeString Type = "string"
	// TypeRegex matches with a compiled regular expression anchored at the
	// current input position.
	TypeRegex Type = "regex"
	// TypeVisual is a string snippet whose replacement incorporates the
	// current selection via VisualPlaceholder.
	TypeVisual Type = "visual"
)

// VisualPlaceholder is the reserved token in a replacement that is
// substituted with the currently selected text at expansion time.
const VisualPlaceholder = "${VISUAL}"

// ReplacementFunc computes replacement text from the matched trigger text
// and, for regex snippets, its capture groups.
type ReplacementFunc func(match string, groups []string) string

// Replacement is either literal text or a text-producing function.
type Replacement struct {
	Text string
	Func ReplacementFunc
}

// IsFunc reports whether the replacement is computed rather than literal.
func (r Replacement) IsFunc() bool {
	return r.Func != nil
}

// RegexTrigger is a trigger declared as a regular expression with its own
// source and flags, before any merging with the snippet-level flags.
type RegexTrigger struct {
	Source string
	Flags  string
}

// RawSnippet is a validated but not yet compiled declaration.
type RawSnippet struct {
	// Trigger holds the literal trigger text. Empty when TriggerRegex is set.
	Trigger string
	// TriggerRegex is non-nil when the declaration used a regex-valued
	// trigger rather than a plain string.
	TriggerRegex *RegexTrigger
	Replacement  Replacement
	Options      string
	Flags        string
	Priority     float64
	Description  string
}

// CompiledSnippet is the pipeline's durable output: a typed, ready-to-match
// rule handed whole to the expansion engine.
type CompiledSnippet struct {
	Type Type

	// Trigger is the post-substitution trigger text. For regex snippets it
	// is the full pattern including the appended end anchor.
	Trigger string

	// Pattern is the compiled expression, set only for TypeRegex.
	Pattern *regexp.Regexp

	// Flags is the sanitized, deduplicated flag string.
	Flags string

	Replacement Replacement
	Options     Options
	Priority    float64
	Description string

	// ExcludedEnvironments lists the contexts in which this snippet must
	// never fire. Always non-nil, possibly empty.
	ExcludedEnvironments []catalog.Environment
}
