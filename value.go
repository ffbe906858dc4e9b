package jskema

import "unicode/utf8"

// JSON type names of the value model.
const (
	TypeNull    = "null"
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeArray   = "array"
	TypeObject  = "object"
)

// TypeOf returns the JSON type name of v, or "" for values outside the model.
func TypeOf(v any) string {
	switch v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	}
	if _, ok := NumberOf(v); ok {
		return TypeNumber
	}
	return ""
}

// StringLength counts Unicode scalar values, not bytes.
func StringLength(s string) uint64 { return uint64(utf8.RuneCountInString(s)) }

// CloneValue deep-copies objects and arrays; scalars are returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = CloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = CloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

// Equal compares two values structurally: object key order is irrelevant,
// array order is significant, and numbers compare by value across
// representations (1 == 1.0). Booleans never equal numbers.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	xn, ok := NumberOf(a)
	if !ok {
		return false
	}
	yn, ok := NumberOf(b)
	return ok && xn.Equal(yn)
}
