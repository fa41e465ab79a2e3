package main

import (
	"bytes"
	"testing"

	"github.com/HWxFrank/metadata/cmd/check-assets/commands"
	"github.com/stretchr/testify/assert"
)

func TestRun_ValidationSucceeded(t *testing.T) {
	commands.Result = commands.ValidationSucceeded
	var buf bytes.Buffer

	exitCode := run(&buf)

	assert.Equal(t, 0, exitCode, "Should return exit code 0 for success")
	assert.Contains(t, buf.String(), "Validation succeeded", "Should print success message")
}

func TestRun_ValidationFailed(t *testing.T) {
	commands.Result = commands.ValidationFailed
	var buf bytes.Buffer

	exitCode := run(&buf)

	assert.Equal(t, 1, exitCode, "Should return exit code 1 for failure")
	assert.Contains(t, buf.String(), "Validation failed", "Should print failure message")
}

func TestRun_ValidationSkipped(t *testing.T) {
	commands.Result = commands.ValidationSkipped
	var buf bytes.Buffer

	exitCode := run(&buf)

	assert.Equal(t, 0, exitCode, "Should return exit code 0 for skipped validation")
	assert.Empty(t, buf.String(), "Should print nothing when no checks ran")
}

func TestRun_ExecutionError(t *testing.T) {
	commands.Result = commands.ExecutionError
	var buf bytes.Buffer

	exitCode := run(&buf)

	assert.Equal(t, 2, exitCode, "Should return exit code 2 for execution errors")
}

func TestRun_PreservesState(t *testing.T) {
	initialResult := commands.ValidationSucceeded
	commands.Result = initialResult
	var buf bytes.Buffer

	_ = run(&buf)

	assert.Equal(t, initialResult, commands.Result, "run() should not modify the Result")
}
