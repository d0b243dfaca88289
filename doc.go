// Package ultrametric turns a minimum spanning tree and a ground-truth
// segmentation into a training signal — a scalar loss and a per-edge
// gradient — for learning ultrametric (hierarchical clustering)
// distances.
//
// 🚀 What is an ultrametric loss?
//
//	Processing an MST's edges in order of non-decreasing distance
//	replays a hierarchical clustering of the underlying points. Ground
//	truth tells us which point pairs belong together (positive) and
//	which must stay apart (negative). The loss penalizes every negative
//	pair that merges at a smaller distance than a positive pair by less
//	than a margin α, and the gradient says how each edge's distance
//	should move to fix that.
//
// ✨ Key features:
//   - pair counting via incremental union-find histogram merges,
//     linear in the MST up to the (typically tiny) active label sets
//   - O(n) loss/gradient assembly through two monotone sliding-window
//     passes instead of the naive O(n²) all-pairs comparison
//   - exact analytic gradient with self-correction at window boundaries
//   - MST pruning down to a coarse-component spanning tree
//   - pure kernels: caller-owned output buffers supported everywhere,
//     no state retained across calls
//
// Everything is organized under three algorithm subpackages plus
// shared types:
//
//	core/     — Edge triples, label classes, shared input validation
//	dsu/      — disjoint-set forest (path compression + union by rank)
//	umloss/   — pair counting, windowed scores, loss + gradient
//	mstprune/ — MST reduction to a spanning tree over coarse components
//
// ⚙️ Quick sketch:
//
//	edges := []core.Edge{{U: 0, V: 1, Dist: 0.5}, {U: 1, V: 2, Dist: 1.0}}
//	labels := []int64{1, 1, 0}
//	opts := umloss.DefaultOptions()
//	opts.Alpha = 0.1
//	res, err := umloss.LossGradient(edges, labels, &opts)
//
// See each subpackage's doc.go and example_test.go for full
// walkthroughs.
//
//	go get github.com/katalvlaran/ultrametric
package ultrametric
