package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
)

// PairGenerator is a test double for ai.PairGenerator.
// It allows custom behavior injection via function fields.
type PairGenerator struct {
	// GeneratePairsFunc is called by GeneratePairs if set.
	// If nil, uses default deterministic behavior.
	GeneratePairsFunc func(ctx context.Context, chunk core.TextChunk) (*ai.Result, error)

	callCount int
}

// NewPairGenerator creates a mock generator with default deterministic
// behavior. Returns the concrete type to allow test assertions.
func NewPairGenerator() *PairGenerator {
	return &PairGenerator{}
}

// GeneratePairs returns one deterministic pair derived from the chunk.
func (m *PairGenerator) GeneratePairs(ctx context.Context, chunk core.TextChunk) (*ai.Result, error) {
	m.callCount++

	if m.GeneratePairsFunc != nil {
		return m.GeneratePairsFunc(ctx, chunk)
	}

	pair := core.QAPair{
		Question: fmt.Sprintf("What does the following say? %q", string(chunk)),
		Answer:   string(chunk),
	}
	return &ai.Result{Status: ai.StatusOK, Pairs: []core.QAPair{pair}}, nil
}

// CallCount returns the number of times GeneratePairs was called.
func (m *PairGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *PairGenerator) Reset() {
	m.callCount = 0
	m.GeneratePairsFunc = nil
}
