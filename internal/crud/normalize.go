package crud

import (
	"strings"
	"unicode"
)

// Body value normalizers shared by resource policies. Each one skips keys
// that are absent or not strings, so partial update bodies pass through
// untouched.

// Trim trims surrounding whitespace on the named body fields.
func Trim(body map[string]any, keys ...string) {
	for _, k := range keys {
		if s, ok := body[k].(string); ok {
			body[k] = strings.TrimSpace(s)
		}
	}
}

// LowerTrim trims and lowercases the named body fields.
func LowerTrim(body map[string]any, keys ...string) {
	for _, k := range keys {
		if s, ok := body[k].(string); ok {
			body[k] = strings.ToLower(strings.TrimSpace(s))
		}
	}
}

// UpperTrim trims and uppercases the named body fields.
func UpperTrim(body map[string]any, keys ...string) {
	for _, k := range keys {
		if s, ok := body[k].(string); ok {
			body[k] = strings.ToUpper(strings.TrimSpace(s))
		}
	}
}

// Digits strips every non-digit rune from the named body fields.
func Digits(body map[string]any, keys ...string) {
	for _, k := range keys {
		if s, ok := body[k].(string); ok {
			body[k] = strings.Map(func(r rune) rune {
				if unicode.IsDigit(r) {
					return r
				}

				return -1
			}, s)
		}
	}
}

// Compact removes all whitespace from the named body fields and uppercases
// the rest. Used for code-like values such as postal codes.
func Compact(body map[string]any, keys ...string) {
	for _, k := range keys {
		if s, ok := body[k].(string); ok {
			body[k] = strings.ToUpper(strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}

				return r
			}, s))
		}
	}
}

// BodyString returns the named body field trimmed, or "" when absent.
func BodyString(body map[string]any, key string) string {
	s, _ := body[key].(string)

	return strings.TrimSpace(s)
}
