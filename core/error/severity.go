// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to every Error so callers can decide
//              how loudly to report a failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as an invalid argument
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates a broken internal invariant
	SeverityHigh

	// SeverityCritical is reserved for unrecoverable failures
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

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeInvalidArgument:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
