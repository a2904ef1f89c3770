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


// Package openai implements pair generation against OpenAI-compatible chat
// APIs (OpenAI, Ollama, LocalAI, vLLM, and similar).
//
// Requests are issued in JSON mode with a bounded output budget and exactly
// one choice consulted. The payload is expected to be an object carrying a
// qa_pairs list; code fences and stray prose around the object are tolerated.
package openai
