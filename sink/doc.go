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


// Package sink defines the destination abstraction for generated pairs.
//
// A sink is a write-only table with fixed Question/Answer columns. The
// pipeline treats delivery as best-effort and at-most-once: a failed Put is
// dropped without retry, so sinks should not implement their own retry
// loops.
//
// # Implementation Packages
//
//   - sink/airtable: the hosted Airtable REST table (the default destination)
//   - sink/badger: a local BadgerDB-backed table for offline runs
package sink
