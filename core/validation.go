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


package core

import (
	"fmt"
	"strings"
)

// ValidateQAPair validates a QAPair according to domain rules.
//
// Validation rules:
//   - Question must not be empty or all whitespace
//   - Answer must not be empty or all whitespace
//
// The model is instructed to produce non-empty fields, but an unreliable
// upstream service is not trusted to honor that.
func ValidateQAPair(pair *QAPair) error {
	if pair == nil {
		return fmt.Errorf("%w: pair is nil", ErrInvalidQAPair)
	}

	if strings.TrimSpace(pair.Question) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrEmptyQuestion)
	}

	if strings.TrimSpace(pair.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrEmptyAnswer)
	}

	return nil
}

// ValidateTextChunk validates a TextChunk according to domain rules.
//
// Validation rules:
//   - the chunk must contain at least one non-blank character
func ValidateTextChunk(chunk TextChunk) error {
	if strings.TrimSpace(string(chunk)) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrBlankChunk)
	}
	return nil
}
