// Package qerrors provides custom error types for quill's completion
// subsystem. Registration and environment failures carry stable codes so
// callers can react programmatically; parse-stage irregularities never
// become errors here (resilient parsing absorbs them).
package qerrors

import (
	"fmt"
)

// QuillError is the base interface for all quill errors
type QuillError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all quill errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ShellVersionError reports a shell whose version is below the supported
// minimum. Fatal for script activation only.
type ShellVersionError struct {
	baseError
	Shell string
}

// NewShellVersionError creates a new shell version error
func NewShellVersionError(shell string, message string) *ShellVersionError {
	return &ShellVersionError{
		baseError: baseError{
			code:    "SHELL_VERSION",
			message: message,
		},
		Shell: shell,
	}
}

// AdapterError reports a shell adapter that failed the registration
// contract. Surfaced immediately, never silently accepted.
type AdapterError struct {
	baseError
	Name string
}

// NewAdapterError creates a new adapter registration error
func NewAdapterError(name string, message string) *AdapterError {
	return &AdapterError{
		baseError: baseError{
			code:    "ADAPTER_CONTRACT",
			message: message,
		},
		Name: name,
	}
}

// NotImplementedError reports an operation the resolved adapter does not
// support (the base adapter for unknown shells).
type NotImplementedError struct {
	baseError
	Op string
}

// NewNotImplementedError creates a new not implemented error
func NewNotImplementedError(op string) *NotImplementedError {
	return &NotImplementedError{
		baseError: baseError{
			code:    "NOT_IMPLEMENTED",
			message: fmt.Sprintf("%s is not implemented for this shell", op),
		},
		Op: op,
	}
}

// DeclareError represents errors while loading a declarative command tree
type DeclareError struct {
	baseError
	Path string
}

// NewDeclareError creates a new declare error
func NewDeclareError(path string, message string, cause error) *DeclareError {
	return &DeclareError{
		baseError: baseError{
			code:    "DECLARE_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}
