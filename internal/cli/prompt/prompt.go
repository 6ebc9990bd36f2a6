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

// Package prompt provides cancellable interactive input collection.
// The production implementation uses the survey library; MockPrompter
// scripts responses for tests. Prompts render on stderr so stdout
// stays clean for the command's actual output.
package prompt

import "context"

// Option is one selectable choice in a single-choice prompt.
// Label is shown to the user; Value is returned on selection.
type Option struct {
	Label string
	Value string
}

// Prompter defines the interface for interactive input collection.
// Implementations must return pkg/errors.ErrCancelled (possibly
// wrapped) when the user aborts a prompt.
type Prompter interface {
	// PromptString collects a free-text input from the user.
	// Implementations reject empty answers with an in-prompt retry
	// where the prompt mechanism supports it; callers must still
	// treat an empty return as unanswered.
	PromptString(ctx context.Context, name, desc string) (string, error)

	// PromptSelect presents options and collects a single choice,
	// returning the chosen option's Value.
	PromptSelect(ctx context.Context, name, desc string, options []Option) (string, error)

	// IsInteractive returns true if prompts can be displayed.
	IsInteractive() bool
}
