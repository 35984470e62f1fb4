// File: stringx.go
// Title: Core String Utility Functions
// Description: String helpers shared by the textbox packages: blank checks,
//              the numeric string grammar, truncation for display and
//              default selection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.2.0: Numeric string grammar, trimmed to the helpers in use

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/textbox/foundation/core/errors"
)

// NumericWhitespace lists the characters allowed around a numeric string
const NumericWhitespace = " \t\n\r\v\f"

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsNumeric reports whether s is a decimal numeral: optional sign, digits
// with an optional decimal point (".5" and "5." both count) and an optional
// exponent. Surrounding ASCII whitespace is allowed. Hexadecimal, "inf",
// "nan" and digit separators are rejected.
func IsNumeric(s string) bool {
	s = strings.Trim(s, NumericWhitespace)
	if s == "" {
		return false
	}

	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = countDigits(s[i:])
		i += fracDigits
	}
	if intDigits+fracDigits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := countDigits(s[i:])
		if expDigits == 0 {
			return false
		}
		i += expDigits
	}

	return i == len(s)
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// TruncateWithValidation truncates a string and rejects a negative length
func TruncateWithValidation(s string, maxLen int, ellipsis string) (string, error) {
	if maxLen < 0 {
		return "", errors.InvalidInput(errors.ModuleStringx, "truncate", maxLen, "non-negative length")
	}
	return Truncate(s, maxLen, ellipsis), nil
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// FirstNonEmpty returns the first non-empty string. Unlike FirstNonBlank a
// whitespace-only value such as " " is accepted.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if !IsEmpty(s) {
			return s
		}
	}
	return ""
}
