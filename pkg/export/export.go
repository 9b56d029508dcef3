// Package export serializes compiled snippets for external tools: a JSON
// or YAML listing, or a TextMate-style plist for editors that import
// tabTrigger snippets.
package export

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/snipforge/snipforge/pkg/snippet"
)

// Format names accepted by Encode.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTextMate = "textmate"
)

// EnvironmentRecord is the serialized form of an excluded environment.
type EnvironmentRecord struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
}

// Record is the serializable view of a compiled snippet. Computed
// replacements cannot round-trip, so they are rendered as a marker.
type Record struct {
	Type                 string              `json:"type" yaml:"type"`
	Trigger              string              `json:"trigger" yaml:"trigger"`
	Replacement          string              `json:"replacement" yaml:"replacement"`
	Options              string              `json:"options" yaml:"options"`
	Flags                string              `json:"flags,omitempty" yaml:"flags,omitempty"`
	Priority             float64             `json:"priority" yaml:"priority"`
	Description          string              `json:"description" yaml:"description"`
	ExcludedEnvironments []EnvironmentRecord `json:"excluded_environments" yaml:"excluded_environments"`
}

// ToRecords converts compiled snippets to their serializable view,
// preserving order.
func ToRecords(snippets []snippet.CompiledSnippet) []Record {
	records := make([]Record, 0, len(snippets))
	for _, s := range snippets {
		replacement := s.Replacement.Text
		if s.Replacement.IsFunc() {
			replacement = "<function>"
		}
		envs := make([]EnvironmentRecord, 0, len(s.ExcludedEnvironments))
		for _, e := range s.ExcludedEnvironments {
			envs = append(envs, EnvironmentRecord{Open: e.OpenSymbol, Close: e.CloseSymbol})
		}
		records = append(records, Record{
			Type:                 string(s.Type),
			Trigger:              s.Trigger,
			Replacement:          replacement,
			Options:              s.Options.String(),
			Flags:                s.Flags,
			Priority:             s.Priority,
			Description:          s.Description,
			ExcludedEnvironments: envs,
		})
	}
	return records
}

// Encode serializes compiled snippets in the named format.
func Encode(format string, snippets []snippet.CompiledSnippet) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(snippets)
	case FormatYAML:
		return YAML(snippets)
	case FormatTextMate:
		return TextMate(snippets)
	default:
		return nil, errors.Newf(errors.ErrExportFormat, "unknown export format %q", format)
	}
}

// JSON renders an indented JSON listing.
func JSON(snippets []snippet.CompiledSnippet) ([]byte, error) {
	data, err := json.MarshalIndent(ToRecords(snippets), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExportWrite, "failed to encode JSON")
	}
	return data, nil
}

// YAML renders a YAML listing.
func YAML(snippets []snippet.CompiledSnippet) ([]byte, error) {
	data, err := yaml.Marshal(ToRecords(snippets))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExportWrite, "failed to encode YAML")
	}
	return data, nil
}
