// Package validate checks decoded JSON request bodies for required fields.
// The checks are pure: callers pass the decoded body and the field names to
// enforce, and receive back a list of human-readable messages, one per
// missing or mistyped field.
package validate

import "strings"

// Required verifies that each named field is present in body and usable.
// A field fails with "missing field" when it is absent, JSON null, or a
// string that trims to empty. The industry_connected field additionally
// fails with "invalid type" when it cannot be coerced to a boolean.
// A nil return means every field passed.
func Required(body map[string]any, fields []string) []string {
	var msgs []string
	for _, name := range fields {
		v, ok := body[name]
		if !ok || v == nil {
			msgs = append(msgs, "missing field: "+name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			msgs = append(msgs, "missing field: "+name)
			continue
		}
		if name == "industry_connected" {
			if _, ok := BoolLike(v); !ok {
				msgs = append(msgs, "invalid type: "+name)
			}
		}
	}
	return msgs
}

// BoolLike coerces a decoded JSON value to a 0/1 integer. Accepted forms
// are JSON booleans, the numbers 0 and 1, and the strings "true", "false",
// "0" and "1" (case-insensitive). The second return reports success.
func BoolLike(v any) (int64, bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case float64:
		// encoding/json decodes all numbers as float64
		if t == 0 || t == 1 {
			return int64(t), true
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1":
			return 1, true
		case "false", "0":
			return 0, true
		}
	}
	return 0, false
}
