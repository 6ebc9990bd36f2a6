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

// Package greeting implements the greeting engine: the closed language
// and period-of-day enumerations and the pure message selection logic.
package greeting

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Language is one of the closed set of supported greeting languages.
// The zero value is not a valid language; use ParseLanguage or the
// exported constants.
type Language string

const (
	// LanguageEN is English.
	LanguageEN Language = "en"
	// LanguageJA is Japanese.
	LanguageJA Language = "ja"
	// LanguageES is Spanish.
	LanguageES Language = "es"
)

// languageTags maps each supported language to its BCP 47 tag.
var languageTags = map[Language]language.Tag{
	LanguageEN: language.English,
	LanguageJA: language.Japanese,
	LanguageES: language.Spanish,
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{LanguageEN, LanguageJA, LanguageES}
}

// LanguageCodes returns the accepted --lang codes in display order.
func LanguageCodes() []string {
	codes := make([]string, 0, len(Languages()))
	for _, l := range Languages() {
		codes = append(codes, string(l))
	}
	return codes
}

// ParseLanguage decodes a raw language code into a Language.
// Codes are matched exactly (case-sensitive); anything outside the
// supported set fails with a message enumerating the allowed values.
func ParseLanguage(raw string) (Language, error) {
	l := Language(raw)
	if _, ok := languageTags[l]; !ok {
		return "", &greeterrors.DecodeError{
			Arg: "--lang",
			Message: fmt.Sprintf("unsupported language %q (allowed: %s)",
				raw, strings.Join(LanguageCodes(), ", ")),
		}
	}
	return l, nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := languageTags[l]
	return ok
}

// Tag returns the BCP 47 tag for the language.
// Returns language.Und for unsupported values.
func (l Language) Tag() language.Tag {
	tag, ok := languageTags[l]
	if !ok {
		return language.Und
	}
	return tag
}

// DisplayName returns the language's name in the language itself
// (e.g., "日本語" for ja), for use as a prompt option label.
func (l Language) DisplayName() string {
	tag, ok := languageTags[l]
	if !ok {
		return string(l)
	}
	return display.Self.Name(tag)
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}
