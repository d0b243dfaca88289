// Package core defines the shared data model of the ultrametric module:
// MST edge triples, ground-truth label classes, and the input
// validation helpers every kernel package relies on.
//
// What:
//
//   - Edge — an MST edge as a flat (U, V, Dist) triple; an MST over n
//     nodes is a []Edge of length n-1, sorted by non-decreasing Dist.
//   - Label classes over int64 ground truth: foreground instance ids
//     (≥ 1), BackgroundLabel (0), and AmbiguousLabel (-1) for
//     foreground points whose instance is unknown.
//   - VerifySorted / VerifyBounds — fail-fast checks for the edge-order
//     and index-range preconditions shared by umloss and mstprune.
//
// Why:
//
//   - Kernels in this module exchange caller-owned flat arrays, not
//     graph objects; core is the single place their shape is defined.
//   - Edge order is load-bearing twice over: it must be a valid
//     Kruskal-style merge order and non-decreasing in distance. A
//     silent violation corrupts results with no other symptom, so the
//     checks live here where every consumer can reach them.
//
// Errors:
//
//   - ErrUnsortedEdges: adjacent edges with decreasing Dist.
//   - ErrEdgeBounds: an edge endpoint outside 0..n-1.
package core
