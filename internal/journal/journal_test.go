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

package journal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAppendsTabSeparatedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	j := New(path)

	id, err := j.Record(context.Background(), "Good morning, Alice!")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	parts := strings.SplitN(lines[0], "\t", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, id, parts[1])
	assert.Equal(t, "Good morning, Alice!", parts[2])
}

func TestRecordAppendsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	j := New(path)

	_, err := j.Record(context.Background(), "first")
	require.NoError(t, err)
	_, err = j.Record(context.Background(), "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestRecordSanitizesNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	j := New(path)

	_, err := j.Record(context.Background(), "hello\nworld")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "hello world")
}

func TestRecordFailsOnUnwritablePath(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "missing", "history.log"))

	_, err := j.Record(context.Background(), "hello")
	assert.Error(t, err)
}

func TestRecordHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	j := New(filepath.Join(t.TempDir(), "history.log"))
	_, err := j.Record(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	j := New(path)

	for _, msg := range []string{"one", "two", "three"} {
		_, err := j.Record(context.Background(), msg)
		require.NoError(t, err)
	}

	entries, err := j.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "three", entries[0].Message)
	assert.Equal(t, "two", entries[1].Message)
}

func TestRecentMissingFileIsEmpty(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "history.log"))

	entries, err := j.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.log")
	require.NoError(t, os.WriteFile(path, []byte("not a valid line\n"), 0600))

	j := New(path)
	_, err := j.Record(context.Background(), "valid")
	require.NoError(t, err)

	entries, err := j.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "valid", entries[0].Message)
}
