// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures raised by the
//              numops library. Codes are stable strings so callers can match
//              on them without depending on message text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set for numeric operations

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Argument validation
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidArgument:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument:
		return "validation"
	default:
		return "generic"
	}
}
