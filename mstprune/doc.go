// Package mstprune reduces a minimum spanning tree to the minimal edge
// subset that spans a coarser grouping of components.
//
// What:
//
//   - Each coarse component is identified by a distinguished label id;
//     every node's label maps it into exactly one component.
//   - Prune walks the MST edges in input order through a union-find
//     forest over component indices: an edge whose endpoint components
//     are already joined (directly or transitively) is redundant and
//     dropped; every other edge is kept and links its two components.
//   - A valid input keeps exactly numComponents-1 edges — any other
//     count means the labels/components contradict the MST, which is
//     surfaced as an error rather than a silent partial result.
//
// Why:
//
//   - After an initial clustering pass, training often continues on a
//     coarser view: whole fragments merge instead of single nodes. The
//     pruned MST is that view's merge order, preserving the original
//     edge ordering (and hence distances) of the first tree.
//
// Complexity: O(n·α(k)) over n-1 edges and k components.
// Memory: O(k) for the forest plus the label lookup.
//
// Errors:
//
//   - ErrEdgeCount, ErrComponentCount, ErrOutputSize: shape mismatches.
//   - ErrUnknownLabel: an endpoint's label has no component entry.
//   - ErrInconsistentComponents: kept-edge count ≠ numComponents-1.
package mstprune
