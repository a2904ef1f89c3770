package pipeline

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports section progress to a writer, typically stderr.
// It is safe for concurrent use.
type ProgressTracker struct {
	writer  io.Writer
	total   int
	current int
	start   time.Time
	started bool
	mu      sync.Mutex
}

// NewProgressTracker creates a tracker writing to writer.
func NewProgressTracker(writer io.Writer) *ProgressTracker {
	return &ProgressTracker{writer: writer}
}

// Start begins tracking a run over total sections.
func (p *ProgressTracker) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.current = 0
	p.start = time.Now()
	p.started = true
}

// Increment advances progress and reports the new position.
func (p *ProgressTracker) Increment(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.current += delta
	if p.current > p.total {
		p.current = p.total
	}
	p.report()
}

// Finish reports the final position and ends the line.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.report()
	fmt.Fprintln(p.writer)
	p.started = false
}

// report prints the current position. Must be called with the lock held.
func (p *ProgressTracker) report() {
	elapsed := time.Since(p.start).Round(time.Second)
	fmt.Fprintf(p.writer, "\rProcessed %d of %d sections (%s elapsed)", p.current, p.total, elapsed)
}
