// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and the
//              logger can prioritize them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity mapping for text processing codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error, typically bad caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	SeverityHigh

	// SeverityCritical indicates an error that makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeInvalidPattern, CodeBadStructuredData:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
