package snippet

import (
	"regexp"

	"github.com/snipforge/snipforge/pkg/errors"
)

// ValidateList asserts that a loaded value is a sequence of raw snippet
// declarations. Validation is fail-fast: the first element that does not
// conform aborts with an error carrying that element's serialization, and
// later elements are not inspected. Output preserves input order.
func ValidateList(value interface{}) ([]RawSnippet, error) {
	elements, err := asSequence(value)
	if err != nil {
		return nil, err
	}

	raws := make([]RawSnippet, 0, len(elements))
	for i, element := range elements {
		raw, err := validateElement(element)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSnippetInvalid,
				"snippet %d is not a valid declaration: %s", i, serializeValue(element)).
				WithDetail("index", i).
				WithDetail("snippet", serializeValue(element))
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// asSequence accepts both loose and already-typed element sequences, since
// the loader may hand back either depending on how the source was written.
func asSequence(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrNotAList,
			"loaded snippet value is not a list: %s", serializeValue(value))
	}
}

func validateElement(element interface{}) (RawSnippet, error) {
	fields, ok := element.(map[string]interface{})
	if !ok {
		return RawSnippet{}, errors.New(errors.ErrInvalidInput, "element is not an object")
	}

	var raw RawSnippet

	trigger, hasTrigger := fields["trigger"]
	if !hasTrigger {
		return RawSnippet{}, errors.New(errors.ErrInvalidInput, "missing trigger")
	}
	switch t := trigger.(type) {
	case string:
		raw.Trigger = t
	case *regexp.Regexp:
		raw.TriggerRegex = &RegexTrigger{Source: t.String()}
	case map[string]interface{}:
		rt, err := validateRegexTrigger(t)
		if err != nil {
			return RawSnippet{}, err
		}
		raw.TriggerRegex = rt
	default:
		return RawSnippet{}, errors.New(errors.ErrInvalidInput,
			"trigger must be a string or a regular expression")
	}

	replacement, hasReplacement := fields["replacement"]
	if !hasReplacement {
		return RawSnippet{}, errors.New(errors.ErrInvalidInput, "missing replacement")
	}
	switch r := replacement.(type) {
	case string:
		raw.Replacement = Replacement{Text: r}
	case func(string) string:
		raw.Replacement = Replacement{Func: func(match string, _ []string) string {
			return r(match)
		}}
	case func(string, []string) string:
		raw.Replacement = Replacement{Func: r}
	case ReplacementFunc:
		raw.Replacement = Replacement{Func: r}
	default:
		return RawSnippet{}, errors.New(errors.ErrInvalidInput,
			"replacement must be a string or a replacement function")
	}

	options, hasOptions := fields["options"]
	if !hasOptions {
		return RawSnippet{}, errors.New(errors.ErrInvalidInput, "missing options")
	}
	optstr, ok := options.(string)
	if !ok {
		return RawSnippet{}, errors.New(errors.ErrInvalidInput, "options must be a string")
	}
	raw.Options = optstr

	if flags, present := fields["flags"]; present {
		f, ok := flags.(string)
		if !ok {
			return RawSnippet{}, errors.New(errors.ErrInvalidInput, "flags must be a string")
		}
		raw.Flags = f
	}

	if priority, present := fields["priority"]; present {
		p, ok := asNumber(priority)
		if !ok {
			return RawSnippet{}, errors.New(errors.ErrInvalidInput, "priority must be a number")
		}
		raw.Priority = p
	}

	if description, present := fields["description"]; present {
		d, ok := description.(string)
		if !ok {
			return RawSnippet{}, errors.New(errors.ErrInvalidInput, "description must be a string")
		}
		raw.Description = d
	} else {
		// Placeholder description so downstream display always has one.
		if raw.TriggerRegex != nil {
			raw.Description = raw.TriggerRegex.Source
		} else {
			raw.Description = raw.Trigger
		}
	}

	return raw, nil
}

func validateRegexTrigger(fields map[string]interface{}) (*RegexTrigger, error) {
	source, ok := fields["source"].(string)
	if !ok {
		return nil, errors.New(errors.ErrInvalidInput,
			"regex trigger must have a string source")
	}
	rt := &RegexTrigger{Source: source}
	if flags, present := fields["flags"]; present {
		f, ok := flags.(string)
		if !ok {
			return nil, errors.New(errors.ErrInvalidInput,
				"regex trigger flags must be a string")
		}
		rt.Flags = f
	}
	return rt, nil
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
