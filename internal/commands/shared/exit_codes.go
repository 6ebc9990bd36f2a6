// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shared

import (
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/tombee/greet/pkg/errors"
)

// Exit codes for the greet CLI
const (
	ExitSuccess  = 0
	ExitInternal = 1 // unexpected/internal error
	ExitUser     = 2 // user error: invalid input or cancelled prompt
)

// ExitError is an error that carries an exit code
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewInternalError creates an error for unexpected internal failures
func NewInternalError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInternal,
		Message: msg,
		Cause:   cause,
	}
}

// NewUserError creates an error for invalid user input
func NewUserError(msg string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUser,
		Message: msg,
		Cause:   cause,
	}
}

// ClassifyError wraps err in an ExitError with the exit code implied
// by its place in the error taxonomy: user errors and cancellation map
// to ExitUser, everything else to ExitInternal. An err that already is
// an ExitError passes through unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	code := ExitInternal
	if pkgerrors.IsUserError(err) {
		code = ExitUser
	}
	return &ExitError{Code: code, Cause: err}
}

// HandleExitError checks if an error is an ExitError and exits with the
// appropriate code. This is the process's only termination point; no
// other component calls os.Exit.
func HandleExitError(err error) {
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if errors.Is(err, pkgerrors.ErrCancelled) {
			// Cancellation is deliberate; a bare note beats an "Error:" banner.
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(exitErr.Code)
		}

		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}

		printUserVisibleSuggestion(err)
		os.Exit(exitErr.Code)
	}

	// Unclassified errors default to internal failure
	fmt.Fprintln(os.Stderr, "Error:", err.Error())
	printUserVisibleSuggestion(err)
	os.Exit(ExitInternal)
}

// printUserVisibleSuggestion checks if an error implements UserVisibleError
// and prints the suggestion if available.
func printUserVisibleSuggestion(err error) {
	// Walk the error chain to find a UserVisibleError
	for err != nil {
		if userErr, ok := err.(pkgerrors.UserVisibleError); ok {
			if userErr.IsUserVisible() {
				if suggestion := userErr.Suggestion(); suggestion != "" {
					fmt.Fprintf(os.Stderr, "\nSuggestion: %s\n", suggestion)
				}
			}
			return
		}
		err = errors.Unwrap(err)
	}
}
