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


package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/sink"
)

const defaultUploadPoolSize = 1

// Stats accumulates counts across one run.
type Stats struct {
	// Chunks is the number of chunks attempted, successful or not.
	Chunks int

	// Pairs is the number of pairs extracted. It counts extraction, not
	// persistence: a failed upload does not decrement it.
	Pairs int
}

// Driver runs the per-chunk generate/extract/upload loop.
//
// Chunks are processed strictly sequentially with one completion request in
// flight at a time. Uploads are handed to a worker pool as one ordered batch
// per chunk and settle before Run returns.
type Driver struct {
	generator  ai.PairGenerator
	sink       sink.Sink
	uploadPool *ants.Pool
	tracker    *ProgressTracker
	logger     *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver) error

// WithUploadPoolSize sets the worker pool size for uploads.
// The default of 1 preserves cross-chunk upload order; larger sizes
// interleave different chunks' batches, which is safe because no cross-chunk
// ordering is required.
func WithUploadPoolSize(size int) Option {
	return func(d *Driver) error {
		if size < 1 {
			size = 1
		}
		if d.uploadPool != nil {
			d.uploadPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		d.uploadPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// WithProgress attaches a progress tracker updated once per chunk.
func WithProgress(tracker *ProgressTracker) Option {
	return func(d *Driver) error {
		d.tracker = tracker
		return nil
	}
}

// NewDriver creates a pipeline driver.
func NewDriver(generator ai.PairGenerator, destination sink.Sink, opts ...Option) (*Driver, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if destination == nil {
		return nil, ErrSinkRequired
	}

	pool, err := ants.NewPool(defaultUploadPoolSize)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		generator:  generator,
		sink:       destination,
		uploadPool: pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(d); optErr != nil {
			d.Release()
			return nil, optErr
		}
	}

	return d, nil
}

// Run processes every chunk in order and returns the final counters.
//
// No outcome below the driver aborts the run: a failed request, an
// undecodable payload, or a failed upload each affect only their own chunk,
// and every chunk is attempted even when earlier ones failed entirely. The
// returned error is reserved for future orchestration concerns and is
// currently always nil.
//
// There is no checkpoint: a restarted run reprocesses everything and will
// upload duplicates.
func (d *Driver) Run(ctx context.Context, chunks []core.TextChunk) (Stats, error) {
	var stats Stats
	var uploads sync.WaitGroup
	total := len(chunks)

	if d.tracker != nil {
		d.tracker.Start(total)
	}

	for _, chunk := range chunks {
		stats.Chunks++

		result, err := d.generator.GeneratePairs(ctx, chunk)
		switch {
		case err != nil:
			d.logger.Error("failed to build pair request", "chunk", stats.Chunks, "err", err)
		case result.Status == ai.StatusRequestFailed:
			d.logger.Warn("no pairs generated for chunk", "chunk", stats.Chunks, "err", result.Err)
		case result.Status == ai.StatusParseFailed:
			d.logger.Error("failed to decode pairs for chunk", "chunk", stats.Chunks, "err", result.Err)
		case len(result.Pairs) == 0:
			d.logger.Warn("model returned zero pairs for chunk", "chunk", stats.Chunks)
		default:
			stats.Pairs += len(result.Pairs)
			d.submitUploads(ctx, &uploads, result.Pairs)
		}

		d.logger.Info("processed chunk",
			"pairs", stats.Pairs,
			"chunk", stats.Chunks,
			"total", total)

		if d.tracker != nil {
			d.tracker.Increment(1)
		}
	}

	// Counters are final already; waiting just keeps uploads from being cut
	// off by the caller exiting.
	uploads.Wait()

	if d.tracker != nil {
		d.tracker.Finish()
	}

	return stats, nil
}

// submitUploads hands one chunk's pairs to the pool as a single ordered
// batch. Delivery is best-effort and at-most-once: a failed Put is dropped
// without retry or logging, and one pair's failure does not block the
// chunk's remaining pairs.
func (d *Driver) submitUploads(ctx context.Context, uploads *sync.WaitGroup, pairs []core.QAPair) {
	uploads.Add(1)
	err := d.uploadPool.Submit(func() {
		defer uploads.Done()
		for _, pair := range pairs {
			_ = d.sink.Put(ctx, pair)
		}
	})
	if err != nil {
		// Pool rejected the batch; the chunk's uploads are dropped, same as
		// any other delivery failure.
		uploads.Done()
	}
}

// Release releases the upload pool.
// The driver should not be used after calling Release.
func (d *Driver) Release() {
	if d.uploadPool != nil {
		d.uploadPool.Release()
	}
}
