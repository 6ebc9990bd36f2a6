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
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tombee/greet/internal/config"
	"github.com/tombee/greet/internal/greeting"
	greeterrors "github.com/tombee/greet/pkg/errors"
)

// runWizard collects the defaults into cfg. The form mutates cfg in
// place; on abort cfg must not be saved.
func runWizard(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default language").
				Description("Used when an invocation has no --lang").
				Options(languageOptions()...).
				Value(&cfg.DefaultLanguage),
			huh.NewInput().
				Title("Default name").
				Description("Optional; leave blank to be asked each time").
				Value(&cfg.DefaultName),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return greeterrors.ErrCancelled
		}
		return greeterrors.Wrap(err, "running setup wizard")
	}
	return nil
}

// languageOptions labels each supported language with its native name.
func languageOptions() []huh.Option[string] {
	langs := greeting.Languages()
	options := make([]huh.Option[string], 0, len(langs))
	for _, l := range langs {
		label := fmt.Sprintf("%s (%s)", l.DisplayName(), l)
		options = append(options, huh.NewOption(label, string(l)))
	}
	return options
}
