package qerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellVersionError(t *testing.T) {
	err := NewShellVersionError("bash", "shell completion requires bash 4.4.0 or newer, found 3.2.57")

	assert.Equal(t, "SHELL_VERSION", err.Code())
	assert.Equal(t, "bash", err.Shell)
	assert.Contains(t, err.Error(), "4.4.0")
	assert.Nil(t, errors.Unwrap(err))
}

func TestAdapterError(t *testing.T) {
	err := NewAdapterError("Bash", "invalid shell name: Bash")

	assert.Equal(t, "ADAPTER_CONTRACT", err.Code())
	assert.Equal(t, "Bash", err.Name)
	assert.Contains(t, err.Error(), "invalid shell name")
}

func TestNotImplementedError(t *testing.T) {
	err := NewNotImplementedError("source")

	assert.Equal(t, "NOT_IMPLEMENTED", err.Code())
	assert.Equal(t, "source", err.Op)
	assert.Contains(t, err.Error(), "source is not implemented")
}

func TestDeclareError(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := NewDeclareError("/path/to/tree.yml", "failed to load command tree", cause)

	assert.Equal(t, "DECLARE_ERROR", err.Code())
	assert.Equal(t, "/path/to/tree.yml", err.Path)
	assert.Contains(t, err.Error(), "failed to load command tree")
	assert.Contains(t, err.Error(), "mapping values")
	assert.Equal(t, cause, errors.Unwrap(err))
}
