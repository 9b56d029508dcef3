package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/snipforge/snipforge/pkg/catalog"
	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/snipforge/snipforge/pkg/snippet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleSnippets() []snippet.CompiledSnippet {
	return []snippet.CompiledSnippet{
		{
			Type:        snippet.TypeString,
			Trigger:     "mk",
			Replacement: snippet.Replacement{Text: "$$0$"},
			Options:     snippet.ParseOptions("tA"),
			Priority:    1,
			Description: "inline math",
			ExcludedEnvironments: []catalog.Environment{
				{OpenSymbol: "\\ce{", CloseSymbol: "}"},
			},
		},
		{
			Type:                 snippet.TypeRegex,
			Trigger:              "abc$",
			Flags:                "i",
			Replacement:          snippet.Replacement{Func: func(m string, _ []string) string { return m }},
			Options:              snippet.ParseOptions("rm"),
			Description:          "regex example",
			ExcludedEnvironments: []catalog.Environment{},
		},
	}
}

func TestToRecords(t *testing.T) {
	records := ToRecords(sampleSnippets())
	require.Len(t, records, 2)

	assert.Equal(t, "string", records[0].Type)
	assert.Equal(t, "$$0$", records[0].Replacement)
	require.Len(t, records[0].ExcludedEnvironments, 1)
	assert.Equal(t, "\\ce{", records[0].ExcludedEnvironments[0].Open)

	assert.Equal(t, "regex", records[1].Type)
	assert.Equal(t, "<function>", records[1].Replacement)
	assert.Equal(t, "i", records[1].Flags)
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := JSON(sampleSnippets())
	require.NoError(t, err)

	var decoded []Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "mk", decoded[0].Trigger)
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := YAML(sampleSnippets())
	require.NoError(t, err)

	var decoded []Record
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "abc$", decoded[1].Trigger)
}

func TestTextMate(t *testing.T) {
	data, err := TextMate(sampleSnippets())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "DOCTYPE plist")
	assert.Contains(t, out, "<key>tabTrigger</key>")
	assert.Contains(t, out, "<string>mk</string>")
	assert.Contains(t, out, "text.tex.latex")
}

func TestEncode(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML, FormatTextMate} {
		data, err := Encode(format, sampleSnippets())
		require.NoError(t, err, format)
		assert.NotEmpty(t, data, format)
	}

	_, err := Encode("csv", sampleSnippets())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExportFormat))
}
