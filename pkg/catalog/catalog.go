// Package catalog provides the static environment classification data
// consumed by the snippet compiler. This package has no dependencies to
// avoid circular imports.
package catalog

// Environment identifies a LaTeX-style delimited context by its opening
// command and matching close token. The compiler treats it as an opaque
// exclusion key.
type Environment struct {
	OpenSymbol  string
	CloseSymbol string
}

// TextCommands lists commands whose argument is rendered as plain text.
// A replacement triggered inside one of these must never be treated as math.
var TextCommands = map[string]bool{
	"\\text{":       true,
	"\\textrm{":     true,
	"\\textbf{":     true,
	"\\textit{":     true,
	"\\textsf{":     true,
	"\\texttt{":     true,
	"\\textnormal{": true,
	"\\mbox{":       true,
	"\\intertext{":  true,
}

// MathFontCommands lists math-font and operator-name commands. Their
// arguments stay in math mode but switch the glyph style.
var MathFontCommands = map[string]bool{
	"\\mathrm{":       true,
	"\\mathbf{":       true,
	"\\mathit{":       true,
	"\\mathsf{":       true,
	"\\mathtt{":       true,
	"\\mathcal{":      true,
	"\\mathbb{":       true,
	"\\mathfrak{":     true,
	"\\mathscr{":      true,
	"\\operatorname{": true,
}

// exclusions maps exact trigger text to the environments in which that
// trigger must not fire. Lookup is verbatim: for regex snippets the key is
// the pattern text before the end anchor is appended.
var exclusions = map[string][]Environment{
	`([A-Za-z])(\d)`: {{OpenSymbol: "\\pu{", CloseSymbol: "}"}},
	"->":             {{OpenSymbol: "\\ce{", CloseSymbol: "}"}},
}

// ResolveExclusions returns the environments in which the given trigger
// text must not fire. The result is a copy; absent triggers yield an empty
// (never nil) slice.
func ResolveExclusions(triggerText string) []Environment {
	envs, ok := exclusions[triggerText]
	if !ok {
		return []Environment{}
	}
	out := make([]Environment, len(envs))
	copy(out, envs)
	return out
}

// IsTextCommand reports whether name opens a pure-text context.
func IsTextCommand(name string) bool {
	return TextCommands[name]
}

// IsMathFontCommand reports whether name opens a math-font context.
func IsMathFontCommand(name string) bool {
	return MathFontCommands[name]
}
