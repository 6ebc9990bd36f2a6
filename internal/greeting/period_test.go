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
	"testing"
	"time"
)

func TestPeriodOf_AllHours(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		var want PeriodOfDay
		switch {
		case hour < 12:
			want = PeriodMorning
		case hour < 18:
			want = PeriodDay
		default:
			want = PeriodEvening
		}

		ts := time.Date(2025, time.March, 14, hour, 30, 0, 0, time.UTC)
		if got := PeriodOf(ts); got != want {
			t.Errorf("PeriodOf(hour=%d) = %v, want %v", hour, got, want)
		}
	}
}

func TestPeriodOf_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want PeriodOfDay
	}{
		{"midnight", 0, PeriodMorning},
		{"last morning hour", 11, PeriodMorning},
		{"noon", 12, PeriodDay},
		{"last day hour", 17, PeriodDay},
		{"start of evening", 18, PeriodEvening},
		{"last hour", 23, PeriodEvening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Date(2025, time.March, 14, tt.hour, 0, 0, 0, time.UTC)
			if got := PeriodOf(ts); got != tt.want {
				t.Errorf("PeriodOf(hour=%d) = %v, want %v", tt.hour, got, tt.want)
			}
		})
	}
}

func TestPeriodOf_UsesLocalHour(t *testing.T) {
	// 23:00 UTC is 08:00 in JST; the period follows the timestamp's
	// own location, with no extra conversion.
	jst := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2025, time.March, 14, 8, 0, 0, 0, jst)

	if got := PeriodOf(ts); got != PeriodMorning {
		t.Errorf("PeriodOf(08:00 JST) = %v, want %v", got, PeriodMorning)
	}
}

func TestPeriodOfDay_String(t *testing.T) {
	tests := []struct {
		period PeriodOfDay
		want   string
	}{
		{PeriodMorning, "morning"},
		{PeriodDay, "day"},
		{PeriodEvening, "evening"},
		{PeriodOfDay(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.period.String(); got != tt.want {
			t.Errorf("PeriodOfDay(%d).String() = %q, want %q", tt.period, got, tt.want)
		}
	}
}
