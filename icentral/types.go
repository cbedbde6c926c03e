// Package icentral declares the mutation vocabulary, functional options,
// and sentinel errors of the incremental engine.
package icentral

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for engine operations.
var (
	// ErrGraphNil is returned if a nil graph view is passed.
	ErrGraphNil = errors.New("icentral: graph is nil")

	// ErrDirectedGraph is returned when an engine operation receives a
	// directed view; incremental maintenance is undirected-only.
	ErrDirectedGraph = errors.New("icentral: directed graphs not supported")

	// ErrStaleScores is returned by Get when the cached score table's key
	// set no longer matches the graph's node set. Recover with Set.
	ErrStaleScores = errors.New("icentral: cached scores inconsistent with graph; call Set to recompute")

	// ErrBadOperation is returned when the operation does not match the
	// call it was passed to, or the supplied graphs contradict it.
	ErrBadOperation = errors.New("icentral: operation inconsistent with arguments")

	// ErrBadWorkers is returned when WithWorkers is given a value < 1.
	ErrBadWorkers = errors.New("icentral: workers must be positive")
)

// Op identifies the kind of graph mutation an update call accounts for.
type Op int

const (
	// CreateEdge adds one edge between two existing nodes (EdgeUpdate).
	CreateEdge Op = iota

	// DeleteEdge removes one edge between two surviving nodes (EdgeUpdate).
	DeleteEdge

	// CreateNode adds one isolated node (NodeUpdate).
	CreateNode

	// DeleteNode removes one isolated node (NodeUpdate).
	DeleteNode

	// CreateAttachNode adds one node plus its single incident edge
	// (NodeEdgeUpdate).
	CreateAttachNode

	// DetachDeleteNode removes one node plus its single incident edge
	// (NodeEdgeUpdate).
	DetachDeleteNode
)

// String returns the mutation name, for diagnostics.
func (op Op) String() string {
	switch op {
	case CreateEdge:
		return "create-edge"
	case DeleteEdge:
		return "delete-edge"
	case CreateNode:
		return "create-node"
	case DeleteNode:
		return "delete-node"
	case CreateAttachNode:
		return "create-attach-node"
	case DetachDeleteNode:
		return "detach-delete-node"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Option configures an engine operation via functional arguments.
// Invalid options are recorded internally and surfaced when the call runs.
type Option func(*Options)

// Options holds per-call parameters.
type Options struct {
	// Normalized rescales the returned scores by the pair-count constant
	// (brandes.Normalization) and returns a copy. Default: false.
	Normalized bool

	// Workers bounds the parallel fan-out over qualifying source nodes in
	// EdgeUpdate, and the offline solver's parallelism during Set.
	// Default: runtime.NumCPU().
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with raw scores and hardware-bounded
// parallelism.
func DefaultOptions() Options {
	return Options{Normalized: false, Workers: runtime.NumCPU()}
}

// WithNormalization makes the call return normalized score copies.
func WithNormalization() Option {
	return func(o *Options) { o.Normalized = true }
}

// WithWorkers bounds the degree of parallelism for this call.
// Values < 1 cause ErrBadWorkers when the operation is invoked.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)

			return
		}
		o.Workers = n
	}
}

// buildOptions folds opts over the defaults and surfaces option violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
