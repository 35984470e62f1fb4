// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching, severity
//              mapping and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-17 v0.2.0: Tests for code based errors.Is and sentinels

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("unexpected end of input").WithCode(CodeBadStructuredData),
			message: "wrapper message",
			wantMsg: "wrapper message: unexpected end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if inner, ok := tt.err.(*Error); ok {
				if wrapped.Code() != inner.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestSentinelMatching(t *testing.T) {
	sentinel := Sentinel(CodeBadStructuredData, "bad structured data")

	if len(sentinel.StackTrace()) != 0 {
		t.Error("Sentinel() should not capture a stack trace")
	}

	err := New("invalid character 'n'").WithCode(CodeBadStructuredData)
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should match errors with the sentinel code")
	}

	wrapped := fmt.Errorf("step 3: %w", err)
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is() should match through fmt.Errorf wrapping")
	}

	other := New("other").WithCode(CodeInvalidPattern)
	if errors.Is(other, sentinel) {
		t.Error("errors.Is() should not match a different code")
	}

	unknownA := New("a")
	unknownB := New("b")
	if errors.Is(unknownA, unknownB) {
		t.Error("errors with CodeUnknown should not match each other")
	}
}

func TestWithCode(t *testing.T) {
	err := New("test error").WithCode(CodeConfigError)

	if err.Code() != CodeConfigError {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeConfigError)
	}

	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}

	explicit := New("test error").WithSeverity(SeverityCritical).WithCode(CodeInvalidPattern)
	if explicit.Severity() != SeverityCritical {
		t.Error("WithCode() should keep an explicitly set severity")
	}
}

func TestWithDetail(t *testing.T) {
	err := New("test error").
		WithDetail("key1", "value1").
		WithDetail("key2", 42)

	details := err.Details()
	if len(details) != 2 {
		t.Errorf("Details() length = %d, want 2", len(details))
	}
	if details["key1"] != "value1" {
		t.Errorf("Details()[\"key1\"] = %v, want \"value1\"", details["key1"])
	}

	details["key3"] = true
	if _, ok := err.Details()["key3"]; ok {
		t.Error("Details() should return a copy")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("inner").WithCode(CodeInvalidPattern)
	outer := fmt.Errorf("outer: %w", Wrap(inner, "wrapped").WithCode(CodeValidationFailed))

	if !HasCode(outer, CodeValidationFailed) {
		t.Error("HasCode() should find outer code")
	}
	if !HasCode(outer, CodeInvalidPattern) {
		t.Error("HasCode() should find inner code")
	}
	if HasCode(outer, CodeNotFound) {
		t.Error("HasCode() should not find absent code")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode() should be false for plain errors")
	}
	if GetCode(outer) != CodeValidationFailed {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeValidationFailed)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() should return CodeUnknown for plain errors")
	}
}

func TestString(t *testing.T) {
	err := New("broken").
		WithCode(CodeInvalidFormat).
		WithOperation("textbox.parse").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{"Error: broken", "Code: INVALID_FORMAT", "Operation: textbox.parse", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "parse failed").
		WithCode(CodeBadStructuredData).
		WithDetail("format", "json")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "BAD_STRUCTURED_DATA" {
		t.Errorf("code = %v, want BAD_STRUCTURED_DATA", decoded["code"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	var mdwErr *Error
	if !errors.As(err, &mdwErr) {
		t.Fatal("expected *Error")
	}
	if chainDepth(err) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(err), MaxErrorChainDepth+1)
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
		severity Severity
	}{
		{CodeBadStructuredData, "text", 2, SeverityLow},
		{CodeInvalidPattern, "text", 2, SeverityLow},
		{CodeValidationFailed, "validation", 3, SeverityLow},
		{CodeInvalidConfig, "configuration", 4, SeverityHigh},
		{CodeNotFound, "generic", 5, SeverityLow},
		{CodeInternal, "generic", 1, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("%s.IsValid() = false", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
			if got := GetSeverityFromCode(tt.code); got != tt.severity {
				t.Errorf("GetSeverityFromCode() = %v, want %v", got, tt.severity)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}
