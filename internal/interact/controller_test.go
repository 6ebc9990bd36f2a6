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

package interact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/greet/internal/cli/prompt"
	"github.com/tombee/greet/internal/greeting"
	greeterrors "github.com/tombee/greet/pkg/errors"
)

func TestResolve_BothMissing(t *testing.T) {
	mp := prompt.NewMockPrompter(true, "Alice", "ja")
	c := NewController(mp)

	values, err := c.Resolve(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Alice", values.Name)
	assert.Equal(t, greeting.LanguageJA, values.Language)
	assert.Equal(t, StateResolved, c.State())

	// Fixed prompt order: name, then language, in a single run.
	assert.Equal(t, []string{"PromptString(name)", "PromptSelect(language)"}, mp.CallLog())
}

func TestResolve_NamePresent(t *testing.T) {
	mp := prompt.NewMockPrompter(true, "es")
	c := NewController(mp)

	values, err := c.Resolve(context.Background(), "Bob")
	require.NoError(t, err)

	assert.Equal(t, "Bob", values.Name)
	assert.Equal(t, greeting.LanguageES, values.Language)

	// The name prompt is skipped when a name already exists.
	assert.Equal(t, []string{"PromptSelect(language)"}, mp.CallLog())
}

func TestResolve_EmptyNameRetries(t *testing.T) {
	// Two empty answers before a valid one: the controller must not
	// advance past the name prompt until it gets a non-empty value.
	mp := prompt.NewMockPrompter(true, "", "", "Alice", "en")
	c := NewController(mp)

	values, err := c.Resolve(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Alice", values.Name)
	assert.Equal(t, []string{
		"PromptString(name)",
		"PromptString(name)",
		"PromptString(name)",
		"PromptSelect(language)",
	}, mp.CallLog())
}

func TestResolve_CancelAtNamePrompt(t *testing.T) {
	mp := prompt.NewMockPrompter(true, prompt.Cancel{})
	c := NewController(mp)

	_, err := c.Resolve(context.Background(), "")
	require.Error(t, err)

	assert.True(t, greeterrors.Is(err, greeterrors.ErrCancelled))
	assert.Equal(t, StateCancelled, c.State())
}

func TestResolve_CancelAtLanguagePrompt(t *testing.T) {
	mp := prompt.NewMockPrompter(true, "Alice", prompt.Cancel{})
	c := NewController(mp)

	_, err := c.Resolve(context.Background(), "")
	require.Error(t, err)

	assert.True(t, greeterrors.Is(err, greeterrors.ErrCancelled))
	assert.Equal(t, StateCancelled, c.State())
}

func TestResolve_LanguageOptionsShowNativeNames(t *testing.T) {
	// The select presents native display names but resolves to codes;
	// the mock enforces that the scripted answer matches an option value.
	mp := prompt.NewMockPrompter(true, "ja")
	c := NewController(mp)

	values, err := c.Resolve(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, greeting.LanguageJA, values.Language)
}

func TestController_InitialState(t *testing.T) {
	c := NewController(prompt.NewMockPrompter(true))
	assert.Equal(t, StateIdle, c.State())
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StatePromptingName, "prompting-name"},
		{StatePromptingLanguage, "prompting-language"},
		{StateResolved, "resolved"},
		{StateCancelled, "cancelled"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}
