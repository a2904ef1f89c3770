// Copyright 2025 Poiesic Systems
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


// Package input supplies the ordered chunks a pipeline run processes.
//
// The trigger mechanism (one-shot start or a recurring schedule) lives
// outside the pipeline; whatever fires it hands the driver a Source, and the
// Source's only capability is producing an ordered list of chunks.
package input

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/qaforge/chunk"
	"github.com/poiesic/qaforge/core"
)

// Source supplies the ordered chunks for one pipeline run.
type Source interface {
	// Chunks returns the chunks in document order.
	// An error here is fatal to the run: no chunk is processed.
	Chunks(ctx context.Context) ([]core.TextChunk, error)
}

// FileSource reads a raw text file and splits it into blank-line sections.
type FileSource struct {
	path     string
	splitter *chunk.Splitter
}

// NewFileSource creates a source reading from path. A nil splitter uses the
// default section behavior.
func NewFileSource(path string, splitter *chunk.Splitter) *FileSource {
	if splitter == nil {
		splitter = chunk.NewSplitter()
	}
	return &FileSource{path: path, splitter: splitter}
}

// Chunks reads the file and sections it.
func (s *FileSource) Chunks(ctx context.Context) ([]core.TextChunk, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read source text: %w", err)
	}
	return s.splitter.Split(string(data)), nil
}

// JSONFileSource reads a pre-chunked JSON array of strings. Each entry is
// used verbatim as one chunk; blank entries are skipped so the no-blank-chunk
// invariant holds regardless of the file's contents.
type JSONFileSource struct {
	path string
}

// NewJSONFileSource creates a source reading a JSON string array from path.
func NewJSONFileSource(path string) *JSONFileSource {
	return &JSONFileSource{path: path}
}

// Chunks reads and decodes the file.
func (s *JSONFileSource) Chunks(ctx context.Context) ([]core.TextChunk, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read source list: %w", err)
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode source list: %w", err)
	}

	chunks := make([]core.TextChunk, 0, len(entries))
	for _, entry := range entries {
		c := core.TextChunk(entry)
		if core.ValidateTextChunk(c) != nil {
			continue
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// StaticSource wraps an in-memory, pre-chunked list of strings.
type StaticSource []string

// Chunks returns the wrapped strings in order, skipping blank entries.
func (s StaticSource) Chunks(ctx context.Context) ([]core.TextChunk, error) {
	chunks := make([]core.TextChunk, 0, len(s))
	for _, entry := range s {
		c := core.TextChunk(entry)
		if core.ValidateTextChunk(c) != nil {
			continue
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}
