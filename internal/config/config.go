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

// Package config loads and stores the greet configuration file.
// A missing file is not an error: the CLI runs fine with defaults and
// `greet setup` writes the file on demand.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Config represents the complete greet configuration.
type Config struct {
	// DefaultLanguage is used when --lang is absent; it must be one of
	// the supported codes (en, ja, es) when set. Empty means no
	// default, which sends the invocation to the interactive prompts.
	DefaultLanguage string `yaml:"default_language,omitempty"`

	// DefaultName is used when the positional name is absent.
	DefaultName string `yaml:"default_name,omitempty"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig configures diagnostic log output.
type LogConfig struct {
	// Level sets the minimum log level (debug, info, warn, error).
	Level string `yaml:"level,omitempty"`

	// Format sets the output format (text, json).
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{}
}

// Load reads the config file at path. A missing file yields the
// default configuration; a malformed file is a validation error so it
// surfaces as user-facing rather than as an internal failure.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, greeterrors.Wrapf(err, "reading config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &greeterrors.ValidationError{
			Field:   "config",
			Message: fmt.Sprintf("%s is not valid YAML", path),
		}
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path with owner-only permissions.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return greeterrors.Wrap(err, "encoding config")
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return greeterrors.Wrapf(err, "writing config %s", path)
	}
	return nil
}

// supportedLanguages mirrors the greeting package's closed set. Kept
// here as plain strings so config stays a leaf package.
var supportedLanguages = map[string]bool{"en": true, "ja": true, "es": true}

func (c *Config) validate(path string) error {
	if c.DefaultLanguage != "" && !supportedLanguages[c.DefaultLanguage] {
		return &greeterrors.ValidationError{
			Field:   "default_language",
			Message: fmt.Sprintf("unsupported language %q in %s (allowed: en, ja, es)", c.DefaultLanguage, path),
		}
	}
	return nil
}
