package badger

import (
	"fmt"

	"github.com/poiesic/qaforge/core"
)

// Key prefixes for the pair table
const (
	pairRecordPrefix = "pairrec"
	pairRecordIDSeq  = "pairrecseq"
)

// makePairRecordKey generates a key for a pair record by ID.
func makePairRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", pairRecordPrefix, id))
}

// pairRecordKeyPrefix returns the iteration prefix covering record keys but
// not the sequence key.
func pairRecordKeyPrefix() []byte {
	return []byte(pairRecordPrefix + ":")
}
