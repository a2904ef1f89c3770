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


package badger

import (
	"github.com/poiesic/qaforge/core"
)

// MarshalPairRecord serializes a PairRecord to bytes.
func MarshalPairRecord(record *core.PairRecord) []byte {
	buf := make([]byte, core.PairRecordMUS.Size(*record))
	core.PairRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalPairRecord deserializes a PairRecord from bytes.
func UnmarshalPairRecord(data []byte) (*core.PairRecord, error) {
	record, _, err := core.PairRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
