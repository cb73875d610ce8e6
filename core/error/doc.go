// Package error provides structured error values for the numops library.
//
// Package: error
// Title: numops Error Handling
// Description: Structured errors with codes, severity and detail maps. Every
//              failure raised by numops is an *Error so that callers can
//              classify it by code instead of parsing messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with codes and severity
//
// Features:
// - Contextual error wrapping that inherits code and details
// - Structured error codes, matched with errors.Is
// - Stack trace capture for debugging
// - JSON marshaling for structured log records
//
// Usage:
//   import mdwerror "github.com/msto63/numops/core/error"
//
//   err := mdwerror.New("factorial of negative number is undefined").
//     WithCode(mdwerror.CodeInvalidArgument).
//     WithDetail("input", -1)
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//     // reject the caller's input
//   }
package error
