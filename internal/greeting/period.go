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

import "time"

// PeriodOfDay classifies a timestamp into one of three greeting periods.
type PeriodOfDay int

const (
	// PeriodMorning covers hours 0 through 11.
	PeriodMorning PeriodOfDay = iota
	// PeriodDay covers hours 12 through 17.
	PeriodDay
	// PeriodEvening covers hours 18 through 23.
	PeriodEvening
)

// Periods returns all periods in chronological order.
func Periods() []PeriodOfDay {
	return []PeriodOfDay{PeriodMorning, PeriodDay, PeriodEvening}
}

// PeriodOf derives the period from the timestamp's hour of day.
// It uses the hour as the timestamp's location already encodes it;
// no additional timezone conversion is applied.
func PeriodOf(t time.Time) PeriodOfDay {
	switch hour := t.Hour(); {
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodDay
	default:
		return PeriodEvening
	}
}

// String returns a human-readable period name.
func (p PeriodOfDay) String() string {
	switch p {
	case PeriodMorning:
		return "morning"
	case PeriodDay:
		return "day"
	case PeriodEvening:
		return "evening"
	default:
		return "unknown"
	}
}
