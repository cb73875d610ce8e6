// File: main_test.go
// Title: Test Entry Point for mathx
// Description: Runs the package tests under goleak so that any goroutine
//              left behind by the concurrency tests fails the run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package mathx

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
