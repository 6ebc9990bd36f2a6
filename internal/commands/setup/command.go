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

// Package setup is the interactive configuration wizard. It stores a
// default language and an optional default name so later invocations
// can skip prompting.
package setup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tombee/greet/internal/cli/format"
	"github.com/tombee/greet/internal/commands/shared"
	"github.com/tombee/greet/internal/config"
	greeterrors "github.com/tombee/greet/pkg/errors"
)

// NewSetupCommand creates the setup command
func NewSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure default greeting settings",
		Long: `Setup walks through the greeting defaults interactively and writes
them to the config file. Stored defaults are used whenever an
invocation leaves the corresponding value out.`,
		Args: shared.UserErrorArgs(cobra.NoArgs),
		RunE: runSetup,
	}
}

func runSetup(cmd *cobra.Command, args []string) error {
	if shared.GetNoInteractive() || shared.IsNonInteractive() {
		return greeterrors.New("setup requires an interactive terminal")
	}

	path := shared.GetConfigPath()
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := runWizard(cfg); err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), format.RenderOK(fmt.Sprintf("Configuration saved to %s", path)))
	return nil
}
