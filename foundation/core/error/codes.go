// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the textbox foundation for
//              consistent error classification across the library, the
//              recipe runner and the command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Reduced to text processing codes, added pattern and structured data codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text processing
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodeInvalidPattern    Code = "INVALID_PATTERN"
	CodeBadStructuredData Code = "BAD_STRUCTURED_DATA"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidFormat, CodeInvalidPattern, CodeBadStructuredData,
		CodeValidationFailed, CodeRequiredField,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidFormat, CodeInvalidPattern, CodeBadStructuredData:
		return "text"
	case CodeValidationFailed, CodeRequiredField:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeInvalidPattern, CodeBadStructuredData:
		return 2
	case CodeValidationFailed, CodeRequiredField:
		return 3
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 4
	case CodeNotFound:
		return 5
	default:
		return 1
	}
}
