// Package umloss computes the ultrametric loss and its per-edge
// gradient over a minimum spanning tree and a ground-truth labeling.
//
// What:
//
//   - Replays the MST edge by edge (non-decreasing distance), merging
//     per-cluster label histograms through a union-find forest.
//   - Cross-multiplies the two endpoint histograms at every merge to
//     count the positive pairs (same foreground instance) and negative
//     pairs (different instances, or foreground/ambiguous vs
//     background) that the edge brings together, then normalizes the
//     counts into per-edge ratios.
//   - Runs one forward and one backward monotone sliding-window pass
//     over the sorted edges to accumulate the windowed moment sums the
//     closed-form loss and gradient need — O(n) instead of the naive
//     O(n²) all-pairs margin comparison.
//
// Why:
//
//   - Training an embedding whose pairwise distances induce a
//     hierarchical clustering: the loss penalizes every ground-truth
//     negative pair that merges at a smaller distance than a positive
//     pair by less than the margin Alpha, and the gradient tells the
//     upstream producer how to move each edge's distance.
//
// Algorithm outline:
//
//  1. Validate shapes (and, by default, the distance ordering).
//  2. Pair counting: for edge i, find the endpoint cluster roots,
//     link them (distinct roots are a hard precondition — equal roots
//     mean the input is not a tree), cross-multiply the two label
//     histograms into ratioPos[i]/ratioNeg[i], fold the non-root
//     histogram into the root's.
//  3. Normalize: ratioPos /= ΣratioPos and ratioNeg /= ΣratioNeg,
//     each only when the total is strictly positive.
//  4. Forward pass: trailing index j advances while
//     dist(j) < dist(i) − Alpha, snapshotting running sums of
//     ratioNeg, dist·ratioNeg and dist²·ratioNeg at each j.
//  5. Backward pass: symmetric, over ratioPos, while
//     dist(j) > dist(i) + Alpha.
//  6. Assemble the scalar loss and the analytic per-edge gradient
//     (with self-correction terms for the window boundary) from the
//     snapshots.
//
// Complexity: O(n·h) pair counting (h = active labels per merge,
// typically a handful) + O(n) passes. Memory: O(n) scratch, freed on
// return; outputs are caller-owned via LossGradientInto or allocated
// once by LossGradient.
//
// Errors:
//
//   - ErrEdgeCount, ErrBufferSize: shape mismatches.
//   - ErrBadAlpha: negative margin.
//   - ErrNotSpanning: an edge joins two nodes already in one cluster.
//   - core.ErrUnsortedEdges / core.ErrEdgeBounds: input validation.
package umloss
