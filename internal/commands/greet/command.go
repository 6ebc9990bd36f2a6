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

package greet

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tombee/greet/internal/args"
	"github.com/tombee/greet/internal/cli/prompt"
	"github.com/tombee/greet/internal/commands/shared"
	"github.com/tombee/greet/internal/config"
	"github.com/tombee/greet/internal/journal"
	"github.com/tombee/greet/internal/log"
)

// Run is the root command's action: it assembles a pipeline from the
// process environment and executes it for this invocation.
func Run(cmd *cobra.Command, argv []string) error {
	raw := args.Raw{Positionals: argv, Named: map[string]string{}}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name == "lang" {
			raw.Named[f.Name] = f.Value.String()
		}
	})

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := buildLogger(cfg)

	interactive := !shared.GetNoInteractive() && !shared.IsNonInteractive()
	p := New(Options{
		Prompter: prompt.NewSurveyPrompter(interactive),
		Journal:  openJournal(logger),
		Logger:   logger,
		Config:   cfg,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	})
	return p.Run(cmd.Context(), raw)
}

func loadConfig() (*config.Config, error) {
	path := shared.GetConfigPath()
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			// No home directory; run with defaults.
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// buildLogger layers the verbosity flags over the environment config.
func buildLogger(cfg *config.Config) *slog.Logger {
	lc := log.FromEnv()
	if cfg.Log.Level != "" {
		lc.Level = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		lc.Format = log.Format(cfg.Log.Format)
	}
	if shared.GetVerbose() {
		lc.Level = "debug"
	}
	if shared.GetQuiet() {
		lc.Level = "error"
	}
	return log.New(lc)
}

// openJournal resolves the default journal path. A failure here just
// means the invocation runs without history.
func openJournal(logger *slog.Logger) *journal.Journal {
	path, err := journal.DefaultPath()
	if err != nil {
		logger.Warn("journal unavailable", log.Error(err))
		return nil
	}
	return journal.New(path)
}
