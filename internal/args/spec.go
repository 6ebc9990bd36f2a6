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

package args

import "context"

// Kind distinguishes how an argument is supplied on the command line.
type Kind int

const (
	// Positional arguments are matched by order.
	Positional Kind = iota
	// Named arguments are matched by their long flag name.
	Named
)

// Argument is one declared argument: its identity, requiredness, and
// the decode step that fills its typed destination. Declarations are
// built once at startup and not mutated afterwards.
type Argument interface {
	// DisplayName is the name used in user-facing error messages
	// (e.g., "name" or "--lang").
	DisplayName() string

	// Kind reports whether the argument is positional or named.
	Kind() Kind

	// Long is the long flag name for named arguments ("" for positional).
	Long() string

	// Required reports whether the argument must be present.
	Required() bool

	// decode runs the argument's decoder on the raw value and, on
	// success, stores the result in the typed destination.
	decode(ctx context.Context, raw string) error
}

// Arg declares a single argument bound to a typed destination.
// Construct with NewPositional or NewNamed.
type Arg[T any] struct {
	displayName string
	kind        Kind
	long        string
	short       string
	required    bool
	decoder     Decoder[T]
	dest        *T
	present     bool
}

// NewPositional declares a positional argument. A required positional
// absent from the input is a binding error; an optional one leaves
// dest untouched.
func NewPositional[T any](name string, required bool, d Decoder[T], dest *T) *Arg[T] {
	return &Arg[T]{
		displayName: name,
		kind:        Positional,
		required:    required,
		decoder:     d,
		dest:        dest,
	}
}

// NewNamed declares a named argument identified by its long flag name
// (the short alias is display metadata; the grammar layer resolves
// aliases before binding).
func NewNamed[T any](long, short string, required bool, d Decoder[T], dest *T) *Arg[T] {
	return &Arg[T]{
		displayName: "--" + long,
		kind:        Named,
		long:        long,
		short:       short,
		required:    required,
		decoder:     d,
		dest:        dest,
	}
}

// DisplayName implements Argument.
func (a *Arg[T]) DisplayName() string { return a.displayName }

// Kind implements Argument.
func (a *Arg[T]) Kind() Kind { return a.kind }

// Long implements Argument.
func (a *Arg[T]) Long() string { return a.long }

// Short returns the short flag alias ("" if none).
func (a *Arg[T]) Short() string { return a.short }

// Required implements Argument.
func (a *Arg[T]) Required() bool { return a.required }

// Set reports whether a value was decoded into the destination during
// the last Bind call. Absent optional arguments leave it false.
func (a *Arg[T]) Set() bool { return a.present }

func (a *Arg[T]) decode(ctx context.Context, raw string) error {
	v, err := a.decoder(ctx, raw)
	if err != nil {
		return err
	}
	*a.dest = v
	a.present = true
	return nil
}
