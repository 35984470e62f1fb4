// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Table driven tests for blank checks, the numeric string
//              grammar, truncation, default selection and identifier
//              normalization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Numeric grammar and identifier tests

package stringx

import (
	"testing"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"zero", "0", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsEmpty(tt.input); result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
			if result := IsNotBlank(tt.input); result == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, result, !tt.expected)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"123", true},
		{"001", true},
		{"-7", true},
		{"+7", true},
		{"1.5", true},
		{".5", true},
		{"5.", true},
		{"1e10", true},
		{"1.5E-3", true},
		{" 42", true},
		{"42 ", true},
		{"\t42\n", true},
		{"", false},
		{" ", false},
		{".", false},
		{"-", false},
		{"1e", false},
		{"e5", false},
		{"0x1A", false},
		{"1_000", false},
		{"1,5", false},
		{"inf", false},
		{"NaN", false},
		{"12abc", false},
		{"1.2.3", false},
		{"--1", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := IsNumeric(tt.input); result != tt.expected {
				t.Errorf("IsNumeric(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"no truncation needed", "hello", 10, "...", "hello"},
		{"exact length", "hello", 5, "...", "hello"},
		{"truncate with ellipsis", "hello world", 8, "...", "hello..."},
		{"zero length", "hello", 0, "...", ""},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"unicode", "こんにちは世界", 5, "…", "こんにち…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Truncate(tt.input, tt.maxLen, tt.ellipsis); result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestTruncateWithValidation(t *testing.T) {
	if _, err := TruncateWithValidation("hello", -1, "..."); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("TruncateWithValidation() error = %v, want INVALID_INPUT", err)
	}

	result, err := TruncateWithValidation("hello world", 8, "...")
	if err != nil {
		t.Fatalf("TruncateWithValidation() error = %v", err)
	}
	if result != "hello..." {
		t.Errorf("TruncateWithValidation() = %q", result)
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", ",", ";"); got != "," {
		t.Errorf("FirstNonBlank() = %q, want \",\"", got)
	}
	if got := FirstNonBlank("", " "); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
	if got := FirstNonEmpty("", " ", ","); got != " " {
		t.Errorf("FirstNonEmpty() = %q, want \" \"", got)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single word", "hello", "hello"},
		{"camelCase", "helloWorld", "hello_world"},
		{"PascalCase", "HelloWorld", "hello_world"},
		{"with spaces", "hello world", "hello_world"},
		{"with hyphens", "hello-world", "hello_world"},
		{"already snake_case", "hello_world", "hello_world"},
		{"consecutive capitals", "HTTPServer", "httpserver"},
		{"numbers", "version2API", "version2_api"},
		{"multiple underscores", "hello___world", "hello_world"},
		{"unicode", "helloWörld", "hello_wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ToSnakeCase(tt.input); result != tt.expected {
				t.Errorf("ToSnakeCase(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	for _, input := range []string{"CutFrom", "cut-from", " cut_from ", "cutFrom"} {
		if got := NormalizeIdentifier(input); got != "cut_from" {
			t.Errorf("NormalizeIdentifier(%q) = %q, want cut_from", input, got)
		}
	}
}
