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

// Package history lists recent entries from the greeting journal.
package history

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tombee/greet/internal/cli/format"
	"github.com/tombee/greet/internal/commands/shared"
	"github.com/tombee/greet/internal/journal"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent greetings",
		Long:  `List recent entries from the greeting history, newest first.`,
		Args:  shared.UserErrorArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := journal.DefaultPath()
			if err != nil {
				return err
			}
			return runHistory(cmd, journal.New(path), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of entries to show")

	return cmd
}

func runHistory(cmd *cobra.Command, j *journal.Journal, limit int) error {
	entries, err := j.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), format.RenderMuted("No greetings recorded yet."))
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%s  %s\n",
			format.RenderMuted(e.Time.Local().Format(time.DateTime)),
			e.Message)
	}
	return nil
}
