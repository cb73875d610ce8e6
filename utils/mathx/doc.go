// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the elementary numeric operations of the
//              numops library: integer addition and multiplication, factorial
//              and integer-exponent powers of float64 values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of the four operations

// Package mathx provides elementary numeric operations.
//
// Package: mathx
// Title: Elementary Numeric Operations
// Description: Four independent pure functions with documented numeric
//              contracts. None of them keeps state, performs I/O or logs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Overview
//
// The package exposes:
//
//   - Add(a, b int) int
//   - Multiply(a, b int) int
//   - Factorial(n int) (int64, error)
//   - Power(base float64, exponent int) float64
//
// Add and Multiply use Go's native int arithmetic; overflow wraps and is not
// reported. Factorial computes in int64 so that inputs up to 20 are exact;
// larger inputs wrap rather than being clamped. Power follows IEEE 754 for
// its edge cases: Power(0, -1) is +Inf and no error is raised.
//
// Usage Examples
//
//	sum := mathx.Add(2, 3)           // 5
//	product := mathx.Multiply(-6, -7) // 42
//
//	f, err := mathx.Factorial(6) // 720
//	if err != nil {
//	    // only for negative n
//	}
//
//	half := mathx.Power(2.0, -1) // 0.5
//	one := mathx.Power(0.0, 0)   // 1, by convention
//
// Error Handling
//
// Factorial is the only fallible function. A negative argument yields an
// error built by core/errors with code INVALID_ARGUMENT, module "mathx" and
// operation "factorial":
//
//	_, err := mathx.Factorial(-1)
//	if errors.Is(err, mathx.ErrInvalidArgument) {
//	    // reject the input
//	}
//
// Recursion
//
// Factorial and Power are recursive; stack depth grows linearly with n and
// with |exponent|. Go stacks grow on demand, so this only matters for very
// large inputs.
//
// Thread Safety
//
// All functions are safe for concurrent use without synchronization.
package mathx
