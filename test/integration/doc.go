// File: doc.go
// Title: Integration Test Package
// Description: Cross-package tests checking that mathx failures are built by
//              core/errors and remain classifiable after callers wrap them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial integration tests

// Package integration holds cross-package tests for numops.
//
// Run them with:
//
//	go test ./test/integration/...
package integration
