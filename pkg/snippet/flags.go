package snippet

import "strings"

// allowedFlags is the closed set of regex flags a snippet may carry, in the
// order surviving characters are emitted. "d", "g" and "y" are dropped
// unconditionally: they would change match semantics in ways incompatible
// with cursor-anchored single-match use.
const allowedFlags = "imsuv"

// inlineFlags is the subset of allowedFlags that the regex engine can apply
// as inline (?...) flags when compiling.
const inlineFlags = "ims"

// SanitizeFlags deduplicates a flag string and keeps only allow-listed
// characters. The output is ordered as in allowedFlags, so sanitation is
// deterministic regardless of input order.
func SanitizeFlags(flags string) string {
	var b strings.Builder
	for _, c := range allowedFlags {
		if strings.ContainsRune(flags, c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// compileFlags returns the inline-applicable subset of an already sanitized
// flag string.
func compileFlags(sanitized string) string {
	var b strings.Builder
	for _, c := range inlineFlags {
		if strings.ContainsRune(sanitized, c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}
