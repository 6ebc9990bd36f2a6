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

package errors

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user aborts an interactive prompt
// (Ctrl-C or an explicit abort in the prompt library). It short-circuits
// the invocation; no further pipeline stages run after it is observed.
var ErrCancelled = errors.New("cancelled by user")

// DecodeError represents a raw command-line value that failed to decode
// into its domain type. Use this for invalid argument values, not for
// arguments that are missing entirely (see BindingError).
type DecodeError struct {
	// Arg is the display name of the offending argument (e.g., "--lang")
	Arg string

	// Message is the human-readable error description. It must be
	// user-facing: no internal error chains or stack detail.
	Message string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("invalid value for %s: %s", e.Arg, e.Message)
	}
	return fmt.Sprintf("invalid value: %s", e.Message)
}

// IsUserVisible marks decode failures as safe to show to users.
func (e *DecodeError) IsUserVisible() bool { return true }

// UserMessage returns the user-facing description.
func (e *DecodeError) UserMessage() string { return e.Error() }

// Suggestion returns actionable guidance, if any.
func (e *DecodeError) Suggestion() string { return "" }

// BindingError represents a required argument that was absent from the
// command line (and could not be resolved any other way).
type BindingError struct {
	// Arg is the display name of the missing argument
	Arg string
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Arg)
}

// IsUserVisible marks binding failures as safe to show to users.
func (e *BindingError) IsUserVisible() bool { return true }

// UserMessage returns the user-facing description.
func (e *BindingError) UserMessage() string { return e.Error() }

// Suggestion returns actionable guidance, if any.
func (e *BindingError) Suggestion() string {
	return "run with --help to see the expected arguments"
}

// ValidationError represents a domain rule violated by an otherwise
// well-formed input (e.g., an empty name reaching the greeting engine).
type ValidationError struct {
	// Field identifies which input failed validation
	Field string

	// Message is the human-readable error description
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// IsUserVisible marks validation failures as safe to show to users.
func (e *ValidationError) IsUserVisible() bool { return true }

// UserMessage returns the user-facing description.
func (e *ValidationError) UserMessage() string { return e.Error() }

// Suggestion returns actionable guidance, if any.
func (e *ValidationError) Suggestion() string { return "" }

// IsUserError reports whether err belongs to the user-error family:
// decode failures, binding failures, validation failures, and prompt
// cancellation. Anything outside this family is treated as unexpected.
func IsUserError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrCancelled) {
		return true
	}
	var decodeErr *DecodeError
	var bindingErr *BindingError
	var validationErr *ValidationError
	return errors.As(err, &decodeErr) ||
		errors.As(err, &bindingErr) ||
		errors.As(err, &validationErr)
}
