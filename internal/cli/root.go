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

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tombee/greet/internal/cli/format"
	"github.com/tombee/greet/internal/commands/greet"
	"github.com/tombee/greet/internal/commands/shared"
	"github.com/tombee/greet/internal/greeting"
	greeterrors "github.com/tombee/greet/pkg/errors"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for greet. The root
// command itself performs the greeting; subcommands cover setup,
// history, and version.
func NewRootCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "Greet someone in their language, at their time of day",
		Long: `Greet prints a greeting for the given name, phrased for the current
time of day in one of the supported languages (en, ja, es).

Anything you leave out is asked for interactively: omit the name and
--lang on a terminal and greet will prompt for both. Defaults for the
name and language can be stored with 'greet setup'.

Every greeting is appended to a history file; 'greet history' shows
recent entries.`,
		Args:          shared.UserErrorArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if shared.GetNoColor() {
				format.SetColorEnabled(false)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return greet.Run(cmd, args)
		},
	}

	// Get flag pointers from shared package
	verbose, quiet, noColor, noInteractive, config := shared.RegisterFlagPointers()

	// Add global flags
	cmd.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.PersistentFlags().BoolVar(noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(noInteractive, "no-interactive", false, "Disable interactive prompts")
	cmd.PersistentFlags().StringVar(config, "config", "", "Path to config file (default: ~/.config/greet/config.yaml)")

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Greeting language (en, ja, es)")
	_ = cmd.RegisterFlagCompletionFunc("lang", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return greeting.LanguageCodes(), cobra.ShellCompDirectiveNoFileComp
	})

	// Grammar failures (unknown flags, bad flag values) are the user's
	// mistake, not ours; classify them that way. Subcommands inherit
	// this through cobra's parent lookup.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &greeterrors.ValidationError{Field: "arguments", Message: err.Error()}
	})

	return cmd
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError classifies err into the exit-code taxonomy and
// terminates the process with the matching code.
func HandleExitError(err error) {
	shared.HandleExitError(shared.ClassifyError(err))
}
