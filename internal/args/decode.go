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

// Package args turns raw command-line values into validated, typed
// argument records. Decoders convert single raw strings; the binder
// matches declared arguments against the raw input, runs the decoders
// concurrently, and enforces the required/optional policy before any
// handler sees the values.
package args

import (
	"context"
	"fmt"
	"strings"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Decoder converts one raw string value into a typed domain value.
// Decoders must not terminate the process and must report failures as
// user-facing errors (greeterrors.DecodeError); any other error type
// escaping a decoder is treated as unexpected rather than as user
// input error.
type Decoder[T any] func(ctx context.Context, raw string) (T, error)

// String accepts any raw value unchanged.
func String() Decoder[string] {
	return func(ctx context.Context, raw string) (string, error) {
		return raw, nil
	}
}

// NonEmpty accepts any value of length >= 1. The argument name is
// used in failure messages. Whitespace-only values pass: the rule is
// non-empty, not non-blank.
func NonEmpty(arg string) Decoder[string] {
	return func(ctx context.Context, raw string) (string, error) {
		if raw == "" {
			return "", &greeterrors.DecodeError{
				Arg:     arg,
				Message: "value must not be empty",
			}
		}
		return raw, nil
	}
}

// Enum accepts exactly the listed values (case-sensitive). Failure
// messages enumerate the allowed set.
func Enum(arg string, allowed ...string) Decoder[string] {
	return func(ctx context.Context, raw string) (string, error) {
		for _, v := range allowed {
			if raw == v {
				return raw, nil
			}
		}
		return "", &greeterrors.DecodeError{
			Arg: arg,
			Message: fmt.Sprintf("unsupported value %q (allowed: %s)",
				raw, strings.Join(allowed, ", ")),
		}
	}
}

// MapDecoder lifts a decoder through a transformation, producing a
// decoder of the transformed type. The transformation runs only on
// decode success and may itself fail.
func MapDecoder[T, U any](d Decoder[T], f func(T) (U, error)) Decoder[U] {
	return func(ctx context.Context, raw string) (U, error) {
		var zero U
		v, err := d(ctx, raw)
		if err != nil {
			return zero, err
		}
		return f(v)
	}
}
