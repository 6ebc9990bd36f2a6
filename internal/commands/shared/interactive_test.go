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
	"testing"
)

func TestIsNonInteractive_EnvVar(t *testing.T) {
	t.Setenv("GREET_NO_INTERACTIVE", "true")

	if !IsNonInteractive() {
		t.Error("GREET_NO_INTERACTIVE=true should force non-interactive mode")
	}
}

func TestIsCIEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		want   bool
	}{
		{"generic CI", "CI", "true", true},
		{"github actions", "GITHUB_ACTIONS", "1", true},
		{"jenkins home is a path", "JENKINS_HOME", "/var/jenkins", true},
		{"unset-like value", "CI", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "JENKINS_HOME"} {
				t.Setenv(v, "")
			}
			t.Setenv(tt.envVar, tt.value)

			if got := isCIEnvironment(); got != tt.want {
				t.Errorf("isCIEnvironment() with %s=%s = %v, want %v", tt.envVar, tt.value, got, tt.want)
			}
		})
	}
}
