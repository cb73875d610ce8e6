// File: errors.go
// Title: Module Error Constructors
// Description: Standardized constructors that stamp module and operation
//              information onto core/error values, so every failure raised by
//              a numops package carries the same detail layout.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial builder and InvalidArgument constructor

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/numops/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx = "mathx"
)

// Detail keys shared by all constructors
const (
	DetailModule    = "module"
	DetailOperation = "operation"
	DetailInput     = "input"
	DetailExpected  = "expected"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code

	severitySet bool
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
		code:     mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity. Without it the severity follows the code.
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error.
//
// Without an explicit code, a wrapped cause keeps the code of the first
// *mdwerror.Error in its chain; any other cause is classified as
// CodeInternal.
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details[DetailModule] = eb.module
	if eb.operation != "" {
		eb.details[DetailOperation] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	code := eb.code
	if code == mdwerror.CodeUnknown && eb.cause != nil {
		code = err.Code()
		if code == mdwerror.CodeUnknown {
			code = mdwerror.CodeInternal
		}
	}

	err.WithCode(code).
		WithOperation(eb.operation).
		WithDetails(eb.details)
	if eb.severitySet {
		err.WithSeverity(eb.severity)
	}
	return err
}

// InvalidArgument creates the error raised when a function is called with an
// argument outside its domain
func InvalidArgument(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid argument for %s.%s: expected %s", module, operation, expected)).
		Code(mdwerror.CodeInvalidArgument).
		Detail(DetailInput, input).
		Detail(DetailExpected, expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// ExtractDetails returns the details of a structured error, or nil
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr := asError(err); mdwErr != nil {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from a standardized error
func ExtractModule(err error) string {
	if details := ExtractDetails(err); details != nil {
		if mod, ok := details[DetailModule].(string); ok {
			return mod
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from a standardized error
func ExtractOperation(err error) string {
	if details := ExtractDetails(err); details != nil {
		if op, ok := details[DetailOperation].(string); ok {
			return op
		}
	}
	return ""
}

// IsModuleOperation reports whether err was raised by module.operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

func asError(err error) *mdwerror.Error {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr
	}
	return nil
}
