package core

import "fmt"

// VerifySorted checks that edges are sorted by non-decreasing Dist.
// Returns ErrUnsortedEdges (with the offending position) on the first
// adjacent pair that decreases, nil otherwise.
//
// Complexity: O(len(edges)).
func VerifySorted(edges []Edge) error {
	// Compare each adjacent pair once; equality is allowed.
	for i := 1; i < len(edges); i++ {
		if edges[i].Dist < edges[i-1].Dist {
			return fmt.Errorf("%w: edge %d has distance %g after %g", ErrUnsortedEdges, i, edges[i].Dist, edges[i-1].Dist)
		}
	}

	return nil
}

// VerifyBounds checks that every edge endpoint lies in 0..numNodes-1.
// Returns ErrEdgeBounds (with the offending position) on the first
// violation, nil otherwise.
//
// Complexity: O(len(edges)).
func VerifyBounds(edges []Edge, numNodes int) error {
	for i, e := range edges {
		if e.U < 0 || e.U >= numNodes || e.V < 0 || e.V >= numNodes {
			return fmt.Errorf("%w: edge %d connects (%d, %d), want 0..%d", ErrEdgeBounds, i, e.U, e.V, numNodes-1)
		}
	}

	return nil
}
