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

import (
	"context"
	"fmt"
	"sync"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Raw holds the raw command-line values after grammar parsing.
// Positionals are in order of appearance; Named is keyed by long flag
// name and contains an entry only for flags actually supplied.
type Raw struct {
	Positionals []string
	Named       map[string]string
}

// Bind matches the declared arguments against the raw input and runs
// their decoders. Decoders for distinct arguments are independent and
// run concurrently; Bind waits for all of them to settle, then reports
// the first failure in declaration order, naming the offending
// argument. Absent required arguments fail binding; absent optional
// arguments leave their destinations untouched. No handler may run if
// Bind returns an error.
func Bind(ctx context.Context, specs []Argument, raw Raw) error {
	type pending struct {
		slot int
		spec Argument
		raw  string
	}

	var toDecode []pending
	errs := make([]error, len(specs))

	positionalIdx := 0
	for i, spec := range specs {
		var value string
		present := false

		switch spec.Kind() {
		case Positional:
			if positionalIdx < len(raw.Positionals) {
				value = raw.Positionals[positionalIdx]
				present = true
			}
			positionalIdx++
		case Named:
			value, present = raw.Named[spec.Long()]
		}

		if !present {
			if spec.Required() {
				errs[i] = &greeterrors.BindingError{Arg: spec.DisplayName()}
			}
			continue
		}

		toDecode = append(toDecode, pending{slot: i, spec: spec, raw: value})
	}

	// Decode all present values concurrently. Each decoder owns only
	// its own destination and error slot, so no locking is needed.
	var wg sync.WaitGroup
	for _, p := range toDecode {
		wg.Add(1)
		go func(p pending) {
			defer wg.Done()
			defer func() {
				// A panicking decoder is a contract violation, not
				// user error; surface it as an unexpected failure.
				if r := recover(); r != nil {
					errs[p.slot] = fmt.Errorf("decoding %s: %v", p.spec.DisplayName(), r)
				}
			}()
			errs[p.slot] = decodeOne(ctx, p.spec, p.raw)
		}(p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	if positionalIdx < len(raw.Positionals) {
		return &greeterrors.ValidationError{
			Field:   "arguments",
			Message: fmt.Sprintf("unexpected extra argument %q", raw.Positionals[positionalIdx]),
		}
	}

	return nil
}

// decodeOne runs a single decoder and ensures user-facing failures
// name the argument. Errors outside the user-error taxonomy pass
// through unchanged and are reported as unexpected by the caller.
func decodeOne(ctx context.Context, spec Argument, raw string) error {
	err := spec.decode(ctx, raw)
	if err == nil {
		return nil
	}

	var decodeErr *greeterrors.DecodeError
	if greeterrors.As(err, &decodeErr) && decodeErr.Arg == "" {
		return &greeterrors.DecodeError{
			Arg:     spec.DisplayName(),
			Message: decodeErr.Message,
		}
	}
	return err
}
