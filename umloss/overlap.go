package umloss

import (
	"fmt"

	"github.com/katalvlaran/ultrametric/core"
	"github.com/katalvlaran/ultrametric/dsu"
)

// countPairs replays the MST merge by merge and fills ratioPos/ratioNeg
// with the raw number of positive and negative ground-truth pairs each
// edge brings together. Counts are carried as float64 throughout so the
// later normalization and moment arithmetic never truncate.
//
// Per-cluster state is a label histogram: label → how many original
// nodes carrying it have been merged into the cluster. Merging two
// clusters cross-multiplies their histograms (every label pairing
// classified once) and then folds the non-root histogram into the
// root's, so the invariant "histogram counts sum to cluster size"
// holds at every step.
//
// Returns ErrNotSpanning (wrapping dsu.ErrSameSet) if an edge joins two
// nodes already in one cluster.
func countPairs(edges []core.Edge, labels []int64, ratioPos, ratioNeg []float64) error {
	n := len(labels)

	// 1. Every node starts as its own cluster overlapping exactly its
	//    own ground-truth label once.
	sets := dsu.New(n)
	overlaps := make([]map[int64]float64, n)
	for i, label := range labels {
		overlaps[i] = map[int64]float64{label: 1}
	}

	// 2. Replay merges in edge order.
	for i, e := range edges {
		clusterU := sets.Find(e.U)
		clusterV := sets.Find(e.V)

		root, err := sets.Link(clusterU, clusterV)
		if err != nil {
			return fmt.Errorf("%w: edge %d (%d-%d): %w", ErrNotSpanning, i, e.U, e.V, err)
		}
		// Keep clusterU as the surviving root for the merge below.
		if root == clusterV {
			clusterU, clusterV = clusterV, clusterU
		}

		// 3. Classify every cross pairing of the two histograms.
		//
		// Label classes per point: foreground instance (≥1),
		// background (0), ambiguous foreground (-1). Pairings count as:
		//
		//	(n, n) positive
		//	(n, m) negative
		//	(n, 0) negative
		//	(0, -1) negative
		//	(n, -1), (0, 0), (-1, -1) ignored
		var pos, neg float64
		for labelU, countU := range overlaps[clusterU] {
			for labelV, countV := range overlaps[clusterV] {
				pairs := countU * countV

				if core.Foreground(labelU) {
					if labelU == labelV {
						pos += pairs
					} else if core.Foreground(labelV) {
						neg += pairs
					}
				}
				// Exactly one side background pairs negatively with
				// both foreground and ambiguous points.
				if core.Background(labelU) != core.Background(labelV) {
					neg += pairs
				}
			}
		}
		ratioPos[i] = pos
		ratioNeg[i] = neg

		// 4. Fold the non-root histogram into the root's and drop it.
		for labelV, countV := range overlaps[clusterV] {
			overlaps[clusterU][labelV] += countV
		}
		overlaps[clusterV] = nil
	}

	return nil
}
