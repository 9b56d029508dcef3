package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Options
	}{
		{"empty", "", Options{}},
		{"math_auto", "mA", Options{Math: true, Auto: true}},
		{"regex", "rm", Options{Regex: true, Math: true}},
		{"visual", "v", Options{Visual: true}},
		{"word_boundary_text", "tw", Options{Text: true, Word: true}},
		{"block_and_inline_math", "Mn", Options{BlockMath: true, InlineMath: true}},
		{"unknown_codes_carried_through", "mX7", Options{Math: true, Extra: "X7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOptions(tt.in))
		})
	}
}

func TestOptionsStringRoundTrip(t *testing.T) {
	// Encoding is order-normalized, not input-order preserving.
	o := ParseOptions("Amr")
	assert.Equal(t, "mAr", o.String())

	reparsed := ParseOptions(o.String())
	assert.Equal(t, o, reparsed)
}
