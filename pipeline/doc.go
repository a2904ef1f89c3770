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


// Package pipeline drives the chunk-by-chunk pair generation loop.
//
// For each chunk, the driver asks the generator for pairs, hands extracted
// pairs to the sink, and emits a progress log line. Counters are threaded
// through the loop as an explicit accumulator and returned from Run, so the
// driver holds no long-lived mutable state between runs.
//
// The loop never aborts early: per-chunk failures are logged and the next
// chunk is attempted. Upload delivery is best-effort and at-most-once by
// design.
package pipeline
