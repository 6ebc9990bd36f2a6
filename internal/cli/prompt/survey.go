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
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// SurveyPrompter implements Prompter using the survey library.
// All prompt UI renders on stderr; Ctrl-C at any prompt is reported
// as greeterrors.ErrCancelled.
type SurveyPrompter struct {
	interactive bool
}

// NewSurveyPrompter creates a new survey-based prompter.
func NewSurveyPrompter(interactive bool) *SurveyPrompter {
	return &SurveyPrompter{
		interactive: interactive,
	}
}

// stdio routes all prompt rendering to stderr so stdout carries only
// the command's result output.
func (sp *SurveyPrompter) stdio() survey.AskOpt {
	return survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)
}

// PromptString collects a free-text input using survey.Input.
// Empty answers are rejected in-prompt and the user is re-asked.
func (sp *SurveyPrompter) PromptString(ctx context.Context, name, desc string) (string, error) {
	if !sp.interactive {
		return "", fmt.Errorf("cannot prompt for %s in non-interactive mode", name)
	}

	var result string
	input := &survey.Input{
		Message: desc,
	}

	err := survey.AskOne(input, &result, sp.stdio(), survey.WithValidator(func(ans interface{}) error {
		if str, ok := ans.(string); ok {
			return ValidateAnswer(str)
		}
		return nil
	}))

	return result, mapCancellation(err)
}

// PromptSelect collects a single choice using survey.Select.
func (sp *SurveyPrompter) PromptSelect(ctx context.Context, name, desc string, options []Option) (string, error) {
	if !sp.interactive {
		return "", fmt.Errorf("cannot prompt for %s in non-interactive mode", name)
	}

	if len(options) == 0 {
		return "", fmt.Errorf("no options provided for %s", name)
	}

	labels := make([]string, 0, len(options))
	byLabel := make(map[string]string, len(options))
	for _, opt := range options {
		labels = append(labels, opt.Label)
		byLabel[opt.Label] = opt.Value
	}

	var chosen string
	sel := &survey.Select{
		Message: desc,
		Options: labels,
	}

	if err := survey.AskOne(sel, &chosen, sp.stdio()); err != nil {
		return "", mapCancellation(err)
	}

	return byLabel[chosen], nil
}

// IsInteractive returns whether the prompter can display interactive prompts.
func (sp *SurveyPrompter) IsInteractive() bool {
	return sp.interactive
}

// mapCancellation translates survey's interrupt sentinel into the
// shared cancellation error so callers never depend on the prompt
// library directly.
func mapCancellation(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return greeterrors.ErrCancelled
	}
	return err
}
