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

package shared

import (
	"github.com/spf13/cobra"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// UserErrorArgs wraps a cobra positional-args validator so its
// failures land in the user-error taxonomy (exit code 2) instead of
// defaulting to internal. Cobra's own args errors are plain errors,
// which ClassifyError would otherwise treat as unexpected.
func UserErrorArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &greeterrors.ValidationError{Field: "arguments", Message: err.Error()}
		}
		return nil
	}
}
