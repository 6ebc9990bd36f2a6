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

package prompt

import (
	"context"
	"fmt"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Cancel is a scripted response that simulates the user aborting the
// prompt (Ctrl-C).
type Cancel struct{}

// MockPrompter implements Prompter with scripted responses for testing.
// Each prompt consumes the next response in order; a Cancel response
// produces ErrCancelled. Running out of responses is an error so tests
// fail loudly instead of hanging on implicit defaults.
type MockPrompter struct {
	responses    []interface{}
	currentIndex int
	interactive  bool
	callLog      []string
}

// NewMockPrompter creates a new mock prompter with pre-scripted responses.
func NewMockPrompter(interactive bool, responses ...interface{}) *MockPrompter {
	return &MockPrompter{
		responses:   responses,
		interactive: interactive,
		callLog:     make([]string, 0),
	}
}

// PromptString returns the next scripted string response.
func (mp *MockPrompter) PromptString(ctx context.Context, name, desc string) (string, error) {
	mp.callLog = append(mp.callLog, fmt.Sprintf("PromptString(%s)", name))

	resp, err := mp.next(name)
	if err != nil {
		return "", err
	}

	if str, ok := resp.(string); ok {
		return str, nil
	}
	return "", fmt.Errorf("mock response for %s is not a string", name)
}

// PromptSelect returns the next scripted response, which must match
// one of the option values.
func (mp *MockPrompter) PromptSelect(ctx context.Context, name, desc string, options []Option) (string, error) {
	mp.callLog = append(mp.callLog, fmt.Sprintf("PromptSelect(%s)", name))

	resp, err := mp.next(name)
	if err != nil {
		return "", err
	}

	str, ok := resp.(string)
	if !ok {
		return "", fmt.Errorf("mock response for %s is not a string", name)
	}

	for _, opt := range options {
		if opt.Value == str {
			return str, nil
		}
	}
	return "", fmt.Errorf("mock response %q for %s matches no option", str, name)
}

// IsInteractive returns the configured interactivity.
func (mp *MockPrompter) IsInteractive() bool {
	return mp.interactive
}

// CallLog returns the prompts issued so far, in order.
func (mp *MockPrompter) CallLog() []string {
	return mp.callLog
}

func (mp *MockPrompter) next(name string) (interface{}, error) {
	if mp.currentIndex >= len(mp.responses) {
		return nil, fmt.Errorf("mock prompter has no response left for %s", name)
	}

	resp := mp.responses[mp.currentIndex]
	mp.currentIndex++

	if _, ok := resp.(Cancel); ok {
		return nil, greeterrors.ErrCancelled
	}
	return resp, nil
}
