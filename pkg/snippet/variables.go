package snippet

import (
	"sort"
	"strings"

	"github.com/snipforge/snipforge/pkg/errors"
)

const (
	variablePrefix = "${"
	variableSuffix = "}"
)

// Variables is an ordered mapping from canonical ${name} keys to their
// substitution text. Order matters: substitution walks entries in the order
// they were added, and later variables may match text introduced by earlier
// ones.
type Variables struct {
	names  []string
	values map[string]string
}

// NewVariables returns an empty variable set.
func NewVariables() *Variables {
	return &Variables{values: make(map[string]string)}
}

// Set adds or replaces a variable. The name may be given bare or already
// wrapped as ${name}; it is canonicalized to the wrapped form. A name with
// only one of the two delimiters is rejected.
func (v *Variables) Set(name, value string) error {
	canonical, err := canonicalName(name)
	if err != nil {
		return err
	}
	if _, exists := v.values[canonical]; !exists {
		v.names = append(v.names, canonical)
	}
	v.values[canonical] = value
	return nil
}

// Get returns the substitution text for a canonical or bare name.
func (v *Variables) Get(name string) (string, bool) {
	canonical, err := canonicalName(name)
	if err != nil {
		return "", false
	}
	value, ok := v.values[canonical]
	return value, ok
}

// Names returns the canonical variable names in substitution order.
func (v *Variables) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Len returns the number of variables.
func (v *Variables) Len() int {
	return len(v.names)
}

// Substitute replaces every occurrence of each variable name in trigger
// with its value, walking variables in order. There is no re-scan
// protection: a later variable may match text an earlier one introduced.
func (v *Variables) Substitute(trigger string) string {
	for _, name := range v.names {
		trigger = strings.ReplaceAll(trigger, name, v.values[name])
	}
	return trigger
}

// NormalizeVariables builds a Variables set from a raw mapping whose keys
// may be bare or ${}-wrapped. Map order is not defined in Go, so entries
// are added in sorted-key order for deterministic substitution.
func NormalizeVariables(raw map[string]string) (*Variables, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vars := NewVariables()
	for _, k := range keys {
		if err := vars.Set(k, raw[k]); err != nil {
			return nil, err
		}
	}
	return vars, nil
}

// canonicalName enforces that a name carries both delimiters or neither,
// and returns the ${name} form.
func canonicalName(name string) (string, error) {
	hasPrefix := strings.HasPrefix(name, variablePrefix)
	hasSuffix := strings.HasSuffix(name, variableSuffix)

	switch {
	case hasPrefix && hasSuffix:
		return name, nil
	case hasPrefix:
		return "", errors.Newf(errors.ErrVariableName,
			"variable %q is missing a closing %q", name, variableSuffix)
	case hasSuffix:
		return "", errors.Newf(errors.ErrVariableName,
			"variable %q is missing an opening %q", name, variablePrefix)
	default:
		return variablePrefix + name + variableSuffix, nil
	}
}
