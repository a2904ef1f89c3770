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


// Package ai provides the abstraction over the completion service used to
// generate question/answer pairs.
//
// The package defines the PairGenerator interface together with the Result
// outcome type. A generator call distinguishes three recoverable outcomes:
// a decoded set of pairs, a failed service request, and an undecodable
// payload. The pipeline driver switches on the outcome instead of treating
// service hiccups as run-ending errors.
//
// # Implementation Packages
//
//   - ai/openai: production implementation for OpenAI-compatible chat APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors (openai.NewGenerator) return the PairGenerator
// interface to enforce abstraction. Test constructors (mock.NewPairGenerator)
// return concrete types so tests can inject behavior and count calls.
package ai
