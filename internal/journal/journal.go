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

// Package journal is the greeting log: an append-only history file in
// the XDG state directory. Recording is the invocation's one deferred
// side effect and its failure is tolerated by callers.
package journal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tombee/greet/internal/config"
	greeterrors "github.com/tombee/greet/pkg/errors"
)

// Entry is one recorded greeting.
type Entry struct {
	Time    time.Time
	ID      string
	Message string
}

// Journal appends and reads greeting entries in a single history file.
type Journal struct {
	path string
}

// New creates a journal over the given file path.
func New(path string) *Journal {
	return &Journal{path: path}
}

// DefaultPath returns the journal location in the XDG state directory.
func DefaultPath() (string, error) {
	dir, err := config.StateDir()
	if err != nil {
		return "", err
	}
	return dir + "/history.log", nil
}

// Path returns the journal's file path.
func (j *Journal) Path() string {
	return j.path
}

// Record appends one greeting to the journal and returns the entry's
// id. The write is attempted exactly once; callers decide whether a
// failure matters.
func (j *Journal) Record(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return "", greeterrors.Wrap(err, "opening journal")
	}
	defer f.Close()

	id := uuid.NewString()
	line := fmt.Sprintf("%s\t%s\t%s\n",
		time.Now().UTC().Format(time.RFC3339),
		id,
		sanitize(message))

	if _, err := f.WriteString(line); err != nil {
		return "", greeterrors.Wrap(err, "appending to journal")
	}
	return id, nil
}

// Recent returns up to limit entries, newest first. Lines that do not
// parse are skipped rather than failing the whole read.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, greeterrors.Wrap(err, "opening journal")
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, greeterrors.Wrap(err, "reading journal")
	}

	// Newest first
	for a, b := 0, len(entries)-1; a < b; a, b = a+1, b-1 {
		entries[a], entries[b] = entries[b], entries[a]
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func parseLine(line string) (Entry, bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) != 3 {
		return Entry{}, false
	}
	ts, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Time: ts, ID: parts[1], Message: parts[2]}, true
}

// sanitize keeps the journal one-line-per-entry even if a message
// somehow contains newlines.
func sanitize(message string) string {
	message = strings.ReplaceAll(message, "\n", " ")
	return strings.ReplaceAll(message, "\r", " ")
}
