package export

import (
	"github.com/beevik/etree"

	"github.com/snipforge/snipforge/pkg/errors"
	"github.com/snipforge/snipforge/pkg/snippet"
)

// textMateScope is the scope selector stamped on every exported snippet.
const textMateScope = "text.tex.latex"

// TextMate renders compiled snippets as a plist array of TextMate-style
// snippet dicts. Regex and visual snippets have no tabTrigger equivalent
// there, so only their content and name carry over; the trigger is kept in
// the tabTrigger field verbatim for reference.
func TextMate(snippets []snippet.CompiledSnippet) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	array := plist.CreateElement("array")

	for _, s := range snippets {
		dict := array.CreateElement("dict")

		dict.CreateElement("key").SetText("name")
		dict.CreateElement("string").SetText(s.Description)

		dict.CreateElement("key").SetText("tabTrigger")
		dict.CreateElement("string").SetText(s.Trigger)

		content := s.Replacement.Text
		if s.Replacement.IsFunc() {
			content = "<function>"
		}
		dict.CreateElement("key").SetText("content")
		dict.CreateElement("string").SetText(content)

		dict.CreateElement("key").SetText("scope")
		dict.CreateElement("string").SetText(textMateScope)
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExportWrite, "failed to encode plist")
	}
	return data, nil
}
