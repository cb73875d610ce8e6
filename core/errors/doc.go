// Package errors provides the standard error constructors for numops packages.
//
// Package: errors
// Title: Standard Error Constructors for numops
// Description: Builds core/error values with a fixed detail layout (module,
//              operation, input, expected) so callers can tell which function
//              rejected which argument without parsing messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial builder and InvalidArgument constructor
//
// Usage:
//
//	err := errors.InvalidArgument(errors.ModuleMathx, "factorial", n, "non-negative integer")
//	if errors.IsModuleOperation(err, errors.ModuleMathx, "factorial") {
//	    // ...
//	}
package errors
