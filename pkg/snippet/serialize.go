package snippet

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// serializeValue renders an arbitrary loaded value for error messages.
// Maps are printed with sorted keys so messages are deterministic, and
// function values are named rather than dumped.
func serializeValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", val)
	case *regexp.Regexp:
		return fmt.Sprintf("regex(%q)", val.String())
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, serializeValue(val[k])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, e := range val {
			parts = append(parts, serializeValue(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	if reflect.ValueOf(v).Kind() == reflect.Func {
		return "<function>"
	}
	return fmt.Sprintf("%v", v)
}
