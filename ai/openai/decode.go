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


package openai

import (
	"encoding/json"
	"strings"

	"github.com/poiesic/qaforge/core"
)

// pairsKey is the object key the model is instructed to wrap its pairs in.
const pairsKey = "qa_pairs"

// qaPair is an internal type used for JSON unmarshaling.
// It matches the structure the model is instructed to produce.
type qaPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// decodePairs decodes a raw model payload of the form
//
//	{"qa_pairs": [{"question": "...", "answer": "..."}, ...]}
//
// into QAPairs, preserving list order. A missing qa_pairs key is not an
// error: it yields zero pairs. Pairs with an empty question or answer are
// dropped rather than trusted. Malformed JSON or a wrong shape returns an
// error.
func decodePairs(payload string) ([]core.QAPair, error) {
	text := stripFences(payload)

	var decoded map[string][]qaPair
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, err
	}

	entries := decoded[pairsKey]
	pairs := make([]core.QAPair, 0, len(entries))
	for _, entry := range entries {
		pair := core.QAPair{Question: entry.Question, Answer: entry.Answer}
		if core.ValidateQAPair(&pair) != nil {
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// stripFences removes markdown code fences some models wrap around JSON
// output, then clamps the text to the outermost object braces.
func stripFences(payload string) string {
	text := strings.TrimSpace(payload)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return text
}
