package sink

import (
	"context"

	"github.com/poiesic/qaforge/core"
)

// Sink persists generated pairs to a destination table.
// Implementations must be thread-safe: the pipeline may issue uploads from a
// worker pool.
type Sink interface {
	// Put appends one pair to the destination table as a new record.
	// Records are append-only: nothing is ever updated or deleted.
	Put(ctx context.Context, pair core.QAPair) error

	// Close releases resources held by the sink.
	Close() error
}

// Discard returns a sink that accepts and drops every record.
// Useful for dry runs.
func Discard() Sink {
	return discard{}
}

type discard struct{}

func (discard) Put(ctx context.Context, pair core.QAPair) error { return nil }

func (discard) Close() error { return nil }
