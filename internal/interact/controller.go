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

// Package interact collects inputs that argument binding left
// unresolved. It runs a small fixed state machine over the prompt
// provider: name first (when missing), then language, with immediate
// cancellation at either prompt.
package interact

import (
	"context"

	"github.com/tombee/greet/internal/cli/prompt"
	"github.com/tombee/greet/internal/greeting"
	greeterrors "github.com/tombee/greet/pkg/errors"
)

// State is the controller's position in the prompt sequence.
type State int

const (
	// StateIdle is the initial state before Resolve runs.
	StateIdle State = iota
	// StatePromptingName is active while the name prompt is shown.
	StatePromptingName
	// StatePromptingLanguage is active while the language prompt is shown.
	StatePromptingLanguage
	// StateResolved means all missing values were collected.
	StateResolved
	// StateCancelled means the user aborted at one of the prompts.
	StateCancelled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePromptingName:
		return "prompting-name"
	case StatePromptingLanguage:
		return "prompting-language"
	case StateResolved:
		return "resolved"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Values holds the inputs collected by one Resolve call.
type Values struct {
	Name     string
	Language greeting.Language
}

// Controller drives the interactive fallback. One controller serves
// one invocation; do not reuse it across invocations.
type Controller struct {
	prompter prompt.Prompter
	state    State
}

// NewController creates a controller over the given prompt provider.
func NewController(p prompt.Prompter) *Controller {
	return &Controller{
		prompter: p,
		state:    StateIdle,
	}
}

// State returns the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// Resolve collects the inputs binding left unresolved. It must be
// called only when the language is still unresolved; a missing name
// is collected in the same run, never through a separate path. The
// name prompt is first and repeats until a non-empty answer arrives;
// the language prompt follows unconditionally. A cancellation at
// either prompt aborts immediately with ErrCancelled and no partial
// values carry forward.
func (c *Controller) Resolve(ctx context.Context, name string) (Values, error) {
	if name == "" {
		c.state = StatePromptingName
		for name == "" {
			answer, err := c.prompter.PromptString(ctx, "name", "What is your name?")
			if err != nil {
				return Values{}, c.abort(err)
			}
			name = answer
		}
	}

	c.state = StatePromptingLanguage
	options := make([]prompt.Option, 0, len(greeting.Languages()))
	for _, l := range greeting.Languages() {
		options = append(options, prompt.Option{
			Label: l.DisplayName(),
			Value: string(l),
		})
	}

	code, err := c.prompter.PromptSelect(ctx, "language", "Which language should I greet you in?", options)
	if err != nil {
		return Values{}, c.abort(err)
	}

	lang, err := greeting.ParseLanguage(code)
	if err != nil {
		// The select constrains choices to valid codes; anything else
		// is a prompt-provider contract violation.
		return Values{}, c.abort(err)
	}

	c.state = StateResolved
	return Values{Name: name, Language: lang}, nil
}

// abort records the terminal state for the failure and passes the
// error through unchanged.
func (c *Controller) abort(err error) error {
	if greeterrors.Is(err, greeterrors.ErrCancelled) {
		c.state = StateCancelled
	}
	return err
}
