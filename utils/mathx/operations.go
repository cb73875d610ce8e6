// File: operations.go
// Title: Elementary Numeric Operations
// Description: Integer addition, integer multiplication, factorial of a
//              non-negative integer and floating-point exponentiation by an
//              integer. All functions are pure and safe for concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of Add, Multiply, Factorial and Power

package mathx

import (
	mdwerror "github.com/msto63/numops/core/error"
	"github.com/msto63/numops/core/errors"
)

// ErrInvalidArgument matches, via errors.Is, every error returned for an
// argument outside a function's domain. It is a match target only: it is
// typed as error so the builder methods of *mdwerror.Error are not reachable
// on it, and functions never return it directly.
var ErrInvalidArgument error = mdwerror.New("invalid argument").WithCode(mdwerror.CodeInvalidArgument)

// Add returns a + b. Overflow wraps.
func Add(a, b int) int {
	return a + b
}

// Multiply returns a * b. Overflow wraps.
func Multiply(a, b int) int {
	return a * b
}

// Factorial returns n! for n >= 0.
// For n < 0 it returns 0 and an error matching ErrInvalidArgument.
// Results for n > 20 overflow int64 and wrap.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, errors.InvalidArgument(errors.ModuleMathx, "factorial", n, "non-negative integer")
	}
	return factorial(n), nil
}

func factorial(n int) int64 {
	if n <= 1 {
		return 1
	}
	return int64(n) * factorial(n-1)
}

// MustFactorial is like Factorial but panics if n is negative.
// Use this when the input is known to be valid (e.g., constants).
func MustFactorial(n int) int64 {
	f, err := Factorial(n)
	if err != nil {
		panic(err)
	}
	return f
}

// Power returns base raised to exponent.
//
// Power(x, 0) is 1 for every x, including 0 and NaN. A negative exponent
// yields the reciprocal of the positive power, so Power(0, -n) is +Inf.
func Power(base float64, exponent int) float64 {
	if exponent == 0 {
		return 1.0
	}
	if exponent < 0 {
		return 1.0 / Power(base, -exponent)
	}
	return base * Power(base, exponent-1)
}
