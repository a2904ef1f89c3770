package ai

import "github.com/poiesic/qaforge/core"

// Status classifies the outcome of generating pairs for one chunk.
type Status int

const (
	// StatusOK means the service replied and the payload decoded cleanly.
	// The Result may still carry zero pairs.
	StatusOK Status = iota

	// StatusRequestFailed means the completion call failed or the service
	// returned no content.
	StatusRequestFailed

	// StatusParseFailed means the payload could not be decoded as a pairs
	// object.
	StatusParseFailed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusRequestFailed:
		return "request failed"
	case StatusParseFailed:
		return "parse failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one chunk's pair generation.
//
// Both failure variants are recoverable: a failed Result carries zero pairs
// and the cause in Err, and the caller is expected to move on to the next
// chunk rather than abort.
type Result struct {
	Status Status
	Pairs  []core.QAPair
	Err    error
}

// OK reports whether the generation succeeded.
func (r *Result) OK() bool {
	return r.Status == StatusOK
}
