// Package brandes defines options and error sentinels for the offline
// betweenness-centrality solver.
package brandes

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Centrality.
var (
	// ErrGraphNil is returned if a nil graph view is passed.
	ErrGraphNil = errors.New("brandes: graph is nil")

	// ErrBadWorkers is returned when WithWorkers is given a value < 1.
	ErrBadWorkers = errors.New("brandes: workers must be positive")
)

// Option configures Centrality via functional arguments.
// Invalid options are recorded internally and surfaced when Centrality runs.
type Option func(*Options)

// Options holds parameters for a Centrality run.
type Options struct {
	// Normalized rescales every score by the pair-count constant
	// (see Normalization). Default: false.
	Normalized bool

	// Workers bounds the number of concurrent per-source passes.
	// Default: 1 (fully sequential, deterministic accumulation).
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sequential execution and raw scores.
func DefaultOptions() Options {
	return Options{Normalized: false, Workers: 1}
}

// WithNormalization enables pair-count normalization of the result.
func WithNormalization() Option {
	return func(o *Options) { o.Normalized = true }
}

// WithWorkers bounds the parallel fan-out over source nodes.
// Values < 1 cause ErrBadWorkers when Centrality is invoked.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)

			return
		}
		o.Workers = n
	}
}

// Normalization returns the constant applied to every score of a graph with
// the given node count: 1/((N-1)(N-2)) when directed, 2/((N-1)(N-2)) when
// undirected, and 1 when N ≤ 2 (no pairs exclude any node).
func Normalization(order int, directed bool) float64 {
	if order <= 2 {
		return 1
	}
	pairs := float64((order - 1) * (order - 2))
	if directed {
		return 1 / pairs
	}

	return 2 / pairs
}
