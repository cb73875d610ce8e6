// File: benchmark_test.go
// Title: Performance Benchmarks for mathx Functions
// Description: Benchmarks for the four operations. Factorial and Power are
//              recursive, so their cost grows with n and |exponent|.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package mathx

import (
	"fmt"
	"testing"
)

var (
	sinkInt   int
	sinkInt64 int64
	sinkFloat float64
)

func BenchmarkAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkInt = Add(i, 42)
	}
}

func BenchmarkMultiply(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkInt = Multiply(i, 42)
	}
}

func BenchmarkFactorial20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkInt64, _ = Factorial(20)
	}
}

func BenchmarkPower(b *testing.B) {
	for _, exp := range []int{8, 64, -64} {
		b.Run(fmt.Sprintf("exp=%d", exp), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkFloat = Power(1.0001, exp)
			}
		})
	}
}
