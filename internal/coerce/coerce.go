// Package coerce converts raw web-form input into Go values. HTML forms
// deliver everything as strings and use conventions of their own: checked
// checkboxes arrive as "on", numbers carry stray whitespace, and multi-value
// fields arrive either as one delimited string or as a repeated field.
// These helpers layer the form conventions on top of spf13/cast, which
// handles the ordinary type conversions.
package coerce

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/conneroisu/termkit/internal/splitter"
)

// Form truthy and falsy string values, matched case-insensitively after
// trimming. Browsers send "on" for checked checkboxes; the rest cover the
// usual hand-typed variants.
var (
	truthy = map[string]bool{
		"on": true, "yes": true, "y": true, "t": true, "true": true, "1": true,
	}
	falsy = map[string]bool{
		"": true, "off": true, "no": true, "n": true, "f": true, "false": true, "0": true,
	}
)

// Bool coerces a form value to a boolean. Strings use form semantics
// (an absent checkbox field is false, "on" is true); other types delegate
// to cast.
func Bool(v interface{}) (bool, error) {
	s, ok := stringValue(v)
	if !ok {
		return cast.ToBoolE(v)
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if truthy[s] {
		return true, nil
	}
	if falsy[s] {
		return false, nil
	}

	return false, fmt.Errorf("cannot coerce %q to bool", s)
}

// Int coerces a form value to an int. String input is trimmed first; an
// empty string is an error rather than zero, so a blank field is
// distinguishable from an explicit 0.
func Int(v interface{}) (int, error) {
	if s, ok := stringValue(v); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, fmt.Errorf("cannot coerce empty string to int")
		}

		return cast.ToIntE(s)
	}

	return cast.ToIntE(v)
}

// Float coerces a form value to a float64 with the same empty-string rule
// as Int.
func Float(v interface{}) (float64, error) {
	if s, ok := stringValue(v); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, fmt.Errorf("cannot coerce empty string to float")
		}

		return cast.ToFloat64E(s)
	}

	return cast.ToFloat64E(v)
}

// List coerces a form value to a string slice. A single string splits on
// the default term splitter, so `tags=go, "standard library" cli` becomes
// three items with the quoted phrase intact; repeated-field slices coerce
// element-wise via cast.
func List(v interface{}) ([]string, error) {
	if s, ok := stringValue(v); ok {
		result, err := splitter.Default().Split(s)
		if err != nil {
			return nil, err
		}

		return result.Terms, nil
	}

	return cast.ToStringSliceE(v)
}

func stringValue(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}
