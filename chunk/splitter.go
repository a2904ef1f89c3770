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


// Package chunk splits raw text into ordered, blank-line-separated sections.
package chunk

import (
	"strings"

	"github.com/poiesic/qaforge/core"
)

// Splitter splits raw text into sections separated by blank lines.
// A section is one or more consecutive non-blank lines; blank lines act as
// section terminators and never appear inside a section.
type Splitter struct {
	flushTrailing bool
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithFlushTrailing controls whether a trailing section that is not followed
// by a blank line is emitted. The historical behavior is to drop it, so the
// default is false.
func WithFlushTrailing(flush bool) Option {
	return func(s *Splitter) {
		s.flushTrailing = flush
	}
}

// NewSplitter creates a Splitter with the given options applied.
func NewSplitter(opts ...Option) *Splitter {
	s := &Splitter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split scans lines in document order, accumulating non-blank lines (each
// with a trailing newline) and emitting the accumulated section when a blank
// line is reached. Empty input yields no chunks and no emitted chunk is ever
// blank.
//
// A final section that ends at end-of-input without a terminating blank line
// is dropped unless the Splitter was built with WithFlushTrailing(true).
func (s *Splitter) Split(raw string) []core.TextChunk {
	var chunks []core.TextChunk
	var section strings.Builder

	for _, line := range splitLines(raw) {
		if strings.TrimSpace(line) != "" {
			section.WriteString(line)
			section.WriteByte('\n')
			continue
		}
		if strings.TrimSpace(section.String()) != "" {
			chunks = append(chunks, core.TextChunk(section.String()))
			section.Reset()
		}
	}

	if s.flushTrailing && strings.TrimSpace(section.String()) != "" {
		chunks = append(chunks, core.TextChunk(section.String()))
	}

	return chunks
}

// splitLines splits text into lines on '\n', stripping a '\r' left by CRLF
// endings. A trailing newline does not produce a final empty line.
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
