// Package dsu implements a disjoint-set forest (union-find) over dense
// integer indices, with path compression and union by rank.
//
// What:
//
//   - DisjointSets holds two parallel slices (parent, rank) indexed by
//     set id — an arena, not a pointer graph.
//   - Find compresses paths iteratively (grandparent hops).
//   - Link unions two set *roots* and reports which root survived;
//     linking a root with itself is a contract violation (ErrSameSet),
//     because the callers in this module feed Kruskal-ordered MST
//     edges where every edge must join two distinct clusters.
//   - Union is the find-then-link convenience for plain members.
//
// Why:
//
//   - Replaying an MST edge-by-edge is repeated "merge two clusters,
//     remember the survivor". Both umloss (cluster histograms) and
//     mstprune (coarse components) need exactly that, with amortized
//     near-constant cost per operation.
//
// Complexity: Find/Link/Union amortize to O(α(n)) ≈ O(1);
// New is O(n). Memory: O(n).
//
// Errors:
//
//   - ErrSameSet: Link called on equal roots (non-tree edge upstream).
//   - ErrIndexRange: an index outside the arena 0..n-1.
package dsu
