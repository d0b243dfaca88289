// Package mstprune filters an MST down to the edges that first connect
// coarse components.
package mstprune

import (
	"fmt"

	"github.com/katalvlaran/ultrametric/core"
	"github.com/katalvlaran/ultrametric/dsu"
)

// Prune returns the numComponents-1 MST edges that span the coarse
// components, in the input's edge order. components maps each component
// index to its distinguished label id; every node label must appear in
// components.
//
// Complexity: O(len(edges)·α(len(components))).
func Prune(edges []core.Edge, labels []int64, components []int64) ([]core.Edge, error) {
	k := len(components)
	if k == 0 {
		return nil, ErrComponentCount
	}

	out := make([]core.Edge, k-1)
	if _, err := PruneInto(edges, labels, components, out); err != nil {
		return nil, err
	}

	return out, nil
}

// PruneInto is Prune over a caller-owned output slice, which must hold
// at least numComponents-1 entries. It returns the number of kept edges
// (always numComponents-1 on success).
//
// Steps:
//  1. Validate shapes and endpoint bounds.
//  2. Index components: label id → component index; start a union-find
//     forest with every component in its own set.
//  3. Walk MST edges in order. Map each endpoint's label to its
//     component, resolve both roots; equal roots mean the components
//     were already joined transitively — drop the edge. Otherwise copy
//     the edge to the output and link the roots.
//  4. Demand exactly numComponents-1 kept edges; any other count means
//     the labeling contradicts the MST (ErrInconsistentComponents).
func PruneInto(edges []core.Edge, labels []int64, components []int64, out []core.Edge) (int, error) {
	// 1. Shape validation.
	n := len(labels)
	m := n - 1
	if n == 0 {
		m = 0
	}
	if len(edges) != m {
		return 0, fmt.Errorf("%w: got %d edges for %d nodes", ErrEdgeCount, len(edges), n)
	}
	k := len(components)
	if k == 0 {
		return 0, ErrComponentCount
	}
	if len(out) < k-1 {
		return 0, fmt.Errorf("%w: got %d for %d components", ErrOutputSize, len(out), k)
	}
	if err := core.VerifyBounds(edges, n); err != nil {
		return 0, err
	}

	// 2. Component lookup and forest.
	indices := make(map[int64]int, k)
	for i, label := range components {
		indices[label] = i
	}
	sets := dsu.New(k)

	// 3. Keep only edges that first join two components.
	kept := 0
	for i, e := range edges {
		componentU, ok := indices[labels[e.U]]
		if !ok {
			return kept, fmt.Errorf("%w: edge %d endpoint %d has label %d", ErrUnknownLabel, i, e.U, labels[e.U])
		}
		componentV, ok := indices[labels[e.V]]
		if !ok {
			return kept, fmt.Errorf("%w: edge %d endpoint %d has label %d", ErrUnknownLabel, i, e.V, labels[e.V])
		}

		rootU := sets.Find(componentU)
		rootV := sets.Find(componentV)
		if rootU == rootV {
			// Both components already joined (same component, or merged
			// transitively by earlier kept edges): redundant edge.
			continue
		}

		out[kept] = e
		kept++
		if _, err := sets.Link(rootU, rootV); err != nil {
			return kept, err // unreachable: roots verified distinct above
		}
	}

	// 4. Exactly k-1 kept edges or the input was inconsistent.
	if kept != k-1 {
		return kept, fmt.Errorf("%w: kept %d edges for %d components", ErrInconsistentComponents, kept, k)
	}

	return kept, nil
}
