package main

import (
	"errors"

	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

// exitError carries the process exit code chosen by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCode maps an error to the process exit code: configuration and input
// errors exit 2, everything else 1.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	var genErr *chromaerrors.GenerationError
	if errors.As(err, &genErr) {
		return exitFailure
	}

	var parseErr *chromaerrors.ParseError
	var validationErr *chromaerrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return exitConfig
	}

	return exitFailure
}
