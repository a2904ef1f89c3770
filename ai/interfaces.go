package ai

import (
	"context"

	"github.com/poiesic/qaforge/core"
)

// PairGenerator produces question/answer pairs from a chunk of source text.
// Implementations must be thread-safe for concurrent use.
type PairGenerator interface {
	// GeneratePairs requests Q&A pairs for a single chunk of text.
	// Service failures and undecodable payloads are recoverable: they are
	// reported through the returned Result's Status, not the error. A non-nil
	// error means the request itself could not be constructed.
	GeneratePairs(ctx context.Context, chunk core.TextChunk) (*Result, error)
}
