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

package greeting

import (
	"fmt"
	"time"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Request holds the validated inputs for one greeting.
// Name must be non-empty; blank-but-non-empty names are accepted.
type Request struct {
	Name     string
	Language Language
	At       time.Time
}

// messages is the complete language × period template table. Every
// supported (language, period) pair must have an entry; completeness
// is asserted by TestMessageTableComplete rather than checked at
// runtime.
var messages = map[Language]map[PeriodOfDay]string{
	LanguageEN: {
		PeriodMorning: "Good morning, %s!",
		PeriodDay:     "Good afternoon, %s!",
		PeriodEvening: "Good evening, %s!",
	},
	LanguageJA: {
		PeriodMorning: "おはようございます、%sさん！",
		PeriodDay:     "こんにちは、%sさん！",
		PeriodEvening: "こんばんは、%sさん！",
	},
	LanguageES: {
		PeriodMorning: "¡Buenos días, %s!",
		PeriodDay:     "¡Buenas tardes, %s!",
		PeriodEvening: "¡Buenas noches, %s!",
	},
}

// Create computes the greeting message for the request. The name is
// re-validated here even though the binder already checks it, so the
// engine holds its own invariant regardless of the caller. Create
// never panics; all failures are returned as values.
func Create(req Request) (string, error) {
	if req.Name == "" {
		return "", &greeterrors.ValidationError{
			Field:   "name",
			Message: "must not be empty",
		}
	}
	if !req.Language.Valid() {
		return "", &greeterrors.ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("unsupported language %q", string(req.Language)),
		}
	}

	template := messages[req.Language][PeriodOf(req.At)]
	return fmt.Sprintf(template, req.Name), nil
}
