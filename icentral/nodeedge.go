package icentral

import (
	"fmt"

	"github.com/katalvlaran/centrality/gview"
)

// NodeEdgeUpdate corrects the cached scores after a degree-1 node is
// attached (CreateAttachNode) or detached (DetachDeleteNode) together with
// its single incident edge (u, v), one endpoint of which must be node.
// current is the post-mutation snapshot.
//
// A single unrestricted Brandes pass suffices: the new or removed node lies
// on no cycle, so every affected pair routes through the surviving
// neighbor. On attach the pass starts at the new node; on detach it starts
// at the surviving neighbor with the source's own path count compensated,
// so paths that previously continued into the removed node subtract
// cleanly.
func (e *Engine) NodeEdgeUpdate(current gview.Graph, op Op, node uint64, u, v uint64, opts ...Option) (map[uint64]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateView(current); err != nil {
		return nil, err
	}
	if op != CreateAttachNode && op != DetachDeleteNode {
		return nil, fmt.Errorf("%w: %s passed to NodeEdgeUpdate", ErrBadOperation, op)
	}
	if node != u && node != v {
		return nil, fmt.Errorf("%w: %s: node %d is not an endpoint of edge (%d,%d)", ErrBadOperation, op, node, u, v)
	}

	// The search starts from the updated node itself on attach, and from
	// its surviving neighbor on detach.
	source := node
	compensate := op == DetachDeleteNode
	if compensate {
		if u == node {
			source = v
		} else {
			source = u
		}
	}
	if err = validateNodeEdgePair(current, op, node, u, v, source); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		if err = e.recompute(current, o); err != nil {
			return nil, err
		}

		return e.result(current.NodeCount(), o), nil
	}

	res, err := brandesBFS(current, source, nil, compensate)
	if err != nil {
		return nil, err
	}

	// One accumulation pass; contributions are whole (not halved) because
	// every corrected pair has the updated node as one fixed endpoint.
	dep := make(map[uint64]float64, len(res.order))
	for _, w := range res.order {
		for _, p := range res.preds[w] {
			dep[p] += res.sigma[p] / res.sigma[w] * (1 + dep[w])
		}
		if w == node {
			continue
		}
		if op == CreateAttachNode {
			e.scores[w] += dep[w]
		} else {
			e.scores[w] -= dep[w]
		}
	}

	if op == CreateAttachNode {
		e.scores[node] = 0
	} else {
		delete(e.scores, node)
	}

	return e.result(current.NodeCount(), o), nil
}

// validateNodeEdgePair checks the post-mutation snapshot against the
// declared attach/detach operation.
func validateNodeEdgePair(current gview.Graph, op Op, node, u, v, source uint64) error {
	if !current.HasNode(source) {
		return fmt.Errorf("icentral: %s: neighbor %d: %w", op, source, gview.ErrNodeNotFound)
	}
	if op == CreateAttachNode {
		if !current.HasNode(node) {
			return fmt.Errorf("icentral: %s: node %d: %w", op, node, gview.ErrNodeNotFound)
		}
		if !current.HasEdge(u, v) {
			return fmt.Errorf("%w: %s but edge (%d,%d) is absent from the current snapshot", ErrBadOperation, op, u, v)
		}

		return nil
	}
	// DetachDeleteNode: the node and its edge must already be gone.
	if current.HasNode(node) {
		return fmt.Errorf("%w: %s but node %d is still present in the current snapshot", ErrBadOperation, op, node)
	}

	return nil
}
