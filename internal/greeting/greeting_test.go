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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// hourFor returns a timestamp falling in the given period.
func hourFor(p PeriodOfDay) time.Time {
	hours := map[PeriodOfDay]int{
		PeriodMorning: 9,
		PeriodDay:     14,
		PeriodEvening: 21,
	}
	return time.Date(2025, time.March, 14, hours[p], 0, 0, 0, time.UTC)
}

func TestMessageTableComplete(t *testing.T) {
	// An incomplete template table is a defect here, never at runtime.
	for _, lang := range Languages() {
		perLang, ok := messages[lang]
		require.True(t, ok, "no message row for language %v", lang)

		for _, period := range Periods() {
			template, ok := perLang[period]
			require.True(t, ok, "no template for %v/%v", lang, period)
			assert.Contains(t, template, "%s", "template for %v/%v must interpolate the name", lang, period)
		}
	}
}

func TestCreate_AllPairs(t *testing.T) {
	for _, lang := range Languages() {
		for _, period := range Periods() {
			t.Run(fmt.Sprintf("%v_%v", lang, period), func(t *testing.T) {
				msg, err := Create(Request{
					Name:     "Alice",
					Language: lang,
					At:       hourFor(period),
				})

				require.NoError(t, err)
				assert.NotEmpty(t, msg)
				assert.Contains(t, msg, "Alice")
			})
		}
	}
}

func TestCreate_Messages(t *testing.T) {
	tests := []struct {
		lang   Language
		period PeriodOfDay
		want   string
	}{
		{LanguageEN, PeriodMorning, "Good morning, Alice!"},
		{LanguageEN, PeriodDay, "Good afternoon, Alice!"},
		{LanguageEN, PeriodEvening, "Good evening, Alice!"},
		{LanguageJA, PeriodMorning, "おはようございます、Aliceさん！"},
		{LanguageES, PeriodEvening, "¡Buenas noches, Alice!"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%v", tt.lang, tt.period), func(t *testing.T) {
			msg, err := Create(Request{Name: "Alice", Language: tt.lang, At: hourFor(tt.period)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestCreate_EmptyName(t *testing.T) {
	for _, period := range Periods() {
		_, err := Create(Request{Name: "", Language: LanguageEN, At: hourFor(period)})
		require.Error(t, err, "empty name must fail regardless of timestamp")

		var validationErr *greeterrors.ValidationError
		require.True(t, greeterrors.As(err, &validationErr))
		assert.Equal(t, "name", validationErr.Field)
	}
}

func TestCreate_BlankName(t *testing.T) {
	// A single space passes the length >= 1 rule. Deliberate: the rule
	// is non-empty, not non-blank.
	msg, err := Create(Request{Name: " ", Language: LanguageEN, At: hourFor(PeriodMorning)})
	require.NoError(t, err)
	assert.True(t, strings.Contains(msg, " "))
}

func TestCreate_InvalidLanguage(t *testing.T) {
	_, err := Create(Request{Name: "Alice", Language: Language("fr"), At: hourFor(PeriodDay)})
	require.Error(t, err)

	var validationErr *greeterrors.ValidationError
	require.True(t, greeterrors.As(err, &validationErr))
	assert.Equal(t, "language", validationErr.Field)
}
