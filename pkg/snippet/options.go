package snippet

import "strings"

// Option codes recognized in a declaration's options string.
const (
	codeText       = 't'
	codeMath       = 'm'
	codeBlockMath  = 'M'
	codeInlineMath = 'n'
	codeAuto       = 'A'
	codeRegex      = 'r'
	codeVisual     = 'v'
	codeWord       = 'w'
)

// Options is the structured form of a declaration's options string.
// Mode codes are carried through for the matching engine; the compiler
// itself only branches on Regex and Visual.
type Options struct {
	Text       bool
	Math       bool
	BlockMath  bool
	InlineMath bool
	Auto       bool
	Regex      bool
	Visual     bool
	Word       bool

	// Extra holds unrecognized codes verbatim, in input order.
	Extra string
}

// ParseOptions decodes an options string character by character. Unknown
// characters are preserved in Extra rather than rejected.
func ParseOptions(s string) Options {
	var o Options
	var extra strings.Builder
	for _, c := range s {
		switch c {
		case codeText:
			o.Text = true
		case codeMath:
			o.Math = true
		case codeBlockMath:
			o.BlockMath = true
		case codeInlineMath:
			o.InlineMath = true
		case codeAuto:
			o.Auto = true
		case codeRegex:
			o.Regex = true
		case codeVisual:
			o.Visual = true
		case codeWord:
			o.Word = true
		default:
			extra.WriteRune(c)
		}
	}
	o.Extra = extra.String()
	return o
}

// String re-encodes the options in a fixed code order, with Extra appended.
func (o Options) String() string {
	var b strings.Builder
	if o.Text {
		b.WriteByte(codeText)
	}
	if o.Math {
		b.WriteByte(codeMath)
	}
	if o.BlockMath {
		b.WriteByte(codeBlockMath)
	}
	if o.InlineMath {
		b.WriteByte(codeInlineMath)
	}
	if o.Auto {
		b.WriteByte(codeAuto)
	}
	if o.Regex {
		b.WriteByte(codeRegex)
	}
	if o.Visual {
		b.WriteByte(codeVisual)
	}
	if o.Word {
		b.WriteByte(codeWord)
	}
	b.WriteString(o.Extra)
	return b.String()
}
