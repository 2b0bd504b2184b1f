// Package clierrors carries process exit codes alongside errors so the
// command entrypoint can map failures onto distinct statuses.
package clierrors

import (
	"errors"
	"fmt"
)

const (
	CodeFailure     = 1
	CodeConfig      = 2
	CodeEnvironment = 3
	CodeNoVersions  = 4
	CodeInjection   = 5
)

type ExitCoder interface {
	error
	ExitCode() int
}

type exitError struct {
	Err  error
	Code int
}

// Exit wraps err so that Code reports the supplied status.
func Exit(err error, code int) error {
	return &exitError{Err: err, Code: code}
}

func (e *exitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *exitError) ExitCode() int {
	if e == nil {
		return 0
	}
	return e.Code
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Code returns the exit status for err: 0 for nil, the wrapped code when an
// ExitCoder is present anywhere in the chain, and CodeFailure otherwise.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return CodeFailure
}
