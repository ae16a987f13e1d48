package record

import (
	"encoding/json"
	"strings"
)

// Value is one decoded JSON value: nil, bool, string, json.Number,
// []Value, or *Record.
type Value any

// Truthy reports whether a value is truthy under best-effort coercion:
// null and absent values are false, booleans are themselves, numbers are
// true when non-zero, strings and containers are true when non-empty.
func Truthy(value Value) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return typed.String() != ""
		}
		return parsed != 0
	case []Value:
		return len(typed) > 0
	case *Record:
		return typed != nil && typed.Len() > 0
	default:
		return false
	}
}

// Stringify renders a value for display: strings pass through, numbers
// keep their source literal, null becomes empty, and containers render
// as compact JSON.
func Stringify(value Value) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		if typed {
			return "true"
		}
		return "false"
	default:
		var builder strings.Builder
		if err := encodeValue(&builder, value); err != nil {
			return ""
		}
		return builder.String()
	}
}

// AsString returns the value as a string when it is one.
func AsString(value Value) (string, bool) {
	text, ok := value.(string)
	return text, ok
}

// AsNumber returns the numeric interpretation of a value. Strings are
// parsed so fields that drift between number and string coerce the same
// way everywhere.
func AsNumber(value Value) (float64, bool) {
	switch typed := value.(type) {
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := json.Number(trimmed).Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// IsBlank reports whether a value is null, absent, or a
// whitespace-only string.
func IsBlank(value Value) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	default:
		return false
	}
}

// CloneValue deep-copies a value.
func CloneValue(value Value) Value {
	switch typed := value.(type) {
	case []Value:
		copied := make([]Value, len(typed))
		for i, element := range typed {
			copied[i] = CloneValue(element)
		}
		return copied
	case *Record:
		return typed.Clone()
	default:
		return typed
	}
}
