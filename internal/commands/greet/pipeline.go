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

// Package greet implements the default command: decode arguments, fill
// the gaps interactively, compose the greeting, and record it.
package greet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tombee/greet/internal/args"
	"github.com/tombee/greet/internal/cli/format"
	"github.com/tombee/greet/internal/cli/prompt"
	"github.com/tombee/greet/internal/commands/shared"
	"github.com/tombee/greet/internal/config"
	"github.com/tombee/greet/internal/greeting"
	"github.com/tombee/greet/internal/interact"
	"github.com/tombee/greet/internal/journal"
	"github.com/tombee/greet/internal/log"
	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Pipeline runs one greeting invocation end to end. The greeting goes
// to stdout; everything else (prompts, warnings, status) goes to
// stderr.
type Pipeline struct {
	prompter prompt.Prompter
	journal  *journal.Journal
	logger   *slog.Logger
	config   *config.Config
	now      func() time.Time
	stdout   io.Writer
	stderr   io.Writer
}

// Options configures a Pipeline. Zero-value fields get sensible
// defaults from New.
type Options struct {
	Prompter prompt.Prompter
	Journal  *journal.Journal
	Logger   *slog.Logger
	Config   *config.Config
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
}

// New creates a pipeline, filling in defaults for unset options.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		prompter: opts.Prompter,
		journal:  opts.Journal,
		logger:   opts.Logger,
		config:   opts.Config,
		now:      opts.Now,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
	}
	if p.logger == nil {
		p.logger = log.New(log.FromEnv())
	}
	if p.config == nil {
		p.config = config.Default()
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	if p.stderr == nil {
		p.stderr = os.Stderr
	}
	return p
}

// Run decodes the raw invocation, resolves missing values, prints the
// greeting, and records it. Journal failures are reported as warnings
// but never fail the run.
func (p *Pipeline) Run(ctx context.Context, raw args.Raw) error {
	invocationID := uuid.NewString()
	logger := log.WithInvocationID(p.logger, invocationID)

	var (
		name string
		lang greeting.Language
	)
	nameArg := args.NewPositional("name", false, args.NonEmpty("name"), &name)
	langArg := args.NewNamed("lang", "l", false, languageDecoder(), &lang)

	if err := args.Bind(ctx, []args.Argument{nameArg, langArg}, raw); err != nil {
		logger.Debug("argument binding failed", log.Error(err))
		return err
	}

	if name == "" && p.config.DefaultName != "" {
		name = p.config.DefaultName
		logger.Debug("using configured name", log.ArgKey, "name")
	}

	language, resolved := p.resolveConfiguredLanguage(langArg.Set(), lang, logger)
	if !resolved {
		values, err := p.resolveInteractively(ctx, name)
		if err != nil {
			return err
		}
		name = values.Name
		language = values.Language
	}

	now := p.now()
	message, err := greeting.Create(greeting.Request{
		Name:     name,
		Language: language,
		At:       now,
	})
	if err != nil {
		return err
	}

	logger.Info("greeting composed",
		slog.String(log.LanguageKey, string(language)),
		slog.String(log.PeriodKey, greeting.PeriodOf(now).String()))

	fmt.Fprintln(p.stdout, message)

	p.record(ctx, message, logger)
	return nil
}

// resolveConfiguredLanguage settles the language without prompting when
// it can: an explicit --lang wins, then the configured default. The
// second return reports whether the language is settled.
func (p *Pipeline) resolveConfiguredLanguage(flagSet bool, flagValue greeting.Language, logger *slog.Logger) (greeting.Language, bool) {
	if flagSet {
		return flagValue, true
	}
	if p.config.DefaultLanguage != "" {
		lang, err := greeting.ParseLanguage(p.config.DefaultLanguage)
		if err == nil {
			logger.Debug("using configured language", log.LanguageKey, string(lang))
			return lang, true
		}
		// Load validates this; reaching here means the config was
		// swapped out under us. Fall through to prompting.
		logger.Warn("ignoring invalid configured language", log.Error(err))
	}
	return "", false
}

// resolveInteractively runs the prompt flow for whatever is still
// missing. Without a prompter (or an interactive terminal) the error
// names every input the prompts would have collected.
func (p *Pipeline) resolveInteractively(ctx context.Context, name string) (interact.Values, error) {
	if p.prompter == nil || !p.prompter.IsInteractive() {
		missing := "--lang"
		if name == "" {
			missing = "name, --lang"
		}
		return interact.Values{}, &greeterrors.BindingError{Arg: missing}
	}
	controller := interact.NewController(p.prompter)
	return controller.Resolve(ctx, name)
}

// record appends the greeting to the journal. This is the invocation's
// only deferred side effect; a failure is surfaced as a warning and the
// run still succeeds.
func (p *Pipeline) record(ctx context.Context, message string, logger *slog.Logger) {
	if p.journal == nil {
		return
	}
	var sp *shared.Spinner
	if format.IsTTY() {
		sp = shared.NewSpinner()
		sp.Start("Recording greeting")
	}
	id, err := p.journal.Record(ctx, message)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		logger.Warn("journal write failed", log.Error(err))
		fmt.Fprintln(p.stderr, format.RenderWarn(fmt.Sprintf("could not record greeting: %v", err)))
		return
	}
	logger.Debug("greeting recorded", slog.String("entry_id", id))
	if !shared.GetQuiet() {
		fmt.Fprintln(p.stderr, format.RenderOK("Greeting recorded"))
	}
}

func languageDecoder() args.Decoder[greeting.Language] {
	return func(ctx context.Context, raw string) (greeting.Language, error) {
		return greeting.ParseLanguage(raw)
	}
}
