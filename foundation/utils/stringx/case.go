// File: case.go
// Title: Identifier Case Conversion
// Description: Converts camelCase, PascalCase, kebab-case and spaced names
//              to snake_case so user supplied identifiers can be matched
//              against a canonical spelling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-17 v0.2.0: Reduced to snake_case and identifier normalization

package stringx

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	if IsEmpty(s) {
		return s
	}

	var result strings.Builder
	prevUpper := false
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && !prevUpper {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
			prevUpper = true
			continue
		case unicode.IsSpace(r) || r == '-':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
		prevUpper = false
	}

	out := result.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return out
}

// NormalizeIdentifier trims s and converts it to snake_case, so "CutFrom",
// "cut-from" and " cut_from " all yield "cut_from".
func NormalizeIdentifier(s string) string {
	return ToSnakeCase(strings.TrimSpace(s))
}
