// File: errors_test.go
// Title: Module Error Constructor Tests
// Description: Tests for the error builder and the InvalidArgument constructor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/numops/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		require.NotNil(t, err)
		details := err.Details()
		assert.Equal(t, "testmodule", details[DetailModule])
		assert.Equal(t, "test_op", details[DetailOperation])
		assert.Equal(t, "value", details["key"])
		assert.Equal(t, "test_op", err.Operation())
		assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		require.NotNil(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "testmodule.test_op failed: underlying error", err.Error())
		assert.Equal(t, mdwerror.CodeInternal, err.Code())
		assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
	})

	t.Run("structured cause keeps its code", func(t *testing.T) {
		cause := InvalidArgument(ModuleMathx, "factorial", -1, "non-negative integer")
		err := NewErrorBuilder(ModuleMathx).Operation("sum").Cause(cause).Build()

		assert.Equal(t, mdwerror.CodeInvalidArgument, err.Code())
		assert.Equal(t, "sum", ExtractOperation(err))
	})

	t.Run("explicit medium severity survives code", func(t *testing.T) {
		err := NewErrorBuilder(ModuleMathx).
			Severity(mdwerror.SeverityMedium).
			Code(mdwerror.CodeInternal).
			Build()

		assert.Equal(t, mdwerror.CodeInternal, err.Code())
		assert.Equal(t, mdwerror.SeverityMedium, err.Severity())
	})

	t.Run("auto-generated message", func(t *testing.T) {
		assert.Equal(t, "testmodule.test_op failed", NewErrorBuilder("testmodule").Operation("test_op").Build().Error())
		assert.Equal(t, "testmodule operation failed", NewErrorBuilder("testmodule").Build().Error())
	})

	t.Run("formatted message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Messagef("value %d rejected", 7).Build()
		assert.Equal(t, "value 7 rejected", err.Error())
	})

	t.Run("code derives severity", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Code(mdwerror.CodeInternal).Build()
		assert.Equal(t, mdwerror.CodeInternal, err.Code())
		assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
	})
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument(ModuleMathx, "factorial", -3, "non-negative integer")

	require.NotNil(t, err)
	assert.Equal(t, mdwerror.CodeInvalidArgument, err.Code())
	assert.Equal(t, mdwerror.SeverityLow, err.Severity())
	assert.Equal(t, "invalid argument for mathx.factorial: expected non-negative integer", err.Error())

	details := err.Details()
	assert.Equal(t, ModuleMathx, details[DetailModule])
	assert.Equal(t, "factorial", details[DetailOperation])
	assert.Equal(t, -3, details[DetailInput])
	assert.Equal(t, "non-negative integer", details[DetailExpected])

	assert.True(t, IsInvalidArgument(err))
	assert.True(t, IsInvalidArgument(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsInvalidArgument(errors.New("plain")))
}

func TestIsInvalidArgumentUnderDifferentCode(t *testing.T) {
	outer := NewErrorBuilder(ModuleMathx).
		Operation("sum").
		Cause(InvalidArgument(ModuleMathx, "factorial", -1, "non-negative integer")).
		Code(mdwerror.CodeInternal).
		Build()

	require.Equal(t, mdwerror.CodeInternal, outer.Code())
	assert.Equal(t, mdwerror.SeverityHigh, outer.Severity())
	assert.True(t, mdwerror.HasCode(outer, mdwerror.CodeInvalidArgument))
	assert.True(t, IsInvalidArgument(outer))
	assert.True(t, IsInvalidArgument(fmt.Errorf("report: %w", outer)))
}

func TestExtractors(t *testing.T) {
	err := fmt.Errorf("caller: %w", InvalidArgument(ModuleMathx, "factorial", -1, "non-negative integer"))

	assert.Equal(t, ModuleMathx, ExtractModule(err))
	assert.Equal(t, "factorial", ExtractOperation(err))
	assert.True(t, IsModuleOperation(err, ModuleMathx, "factorial"))
	assert.False(t, IsModuleOperation(err, ModuleMathx, "power"))

	plain := errors.New("plain")
	assert.Nil(t, ExtractDetails(plain))
	assert.Empty(t, ExtractModule(plain))
	assert.Empty(t, ExtractOperation(plain))
}
