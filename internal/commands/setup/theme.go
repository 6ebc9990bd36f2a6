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

package setup

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("42")
	colorMuted   = lipgloss.Color("245")
	colorError   = lipgloss.Color("196")
)

// Theme defines the visual theme for the setup wizard, matching the
// status colors the rest of the CLI uses.
func Theme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorMuted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(colorError)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorPrimary)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(colorMuted)

	return t
}
