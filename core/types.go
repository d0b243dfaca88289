// Package core declares the Edge triple and ground-truth label classes
// shared by the umloss and mstprune kernels.
package core

import "errors"

// Sentinel errors for shared input validation.
var (
	// ErrUnsortedEdges indicates the edge sequence is not sorted by
	// non-decreasing distance.
	ErrUnsortedEdges = errors.New("core: MST edges not sorted by non-decreasing distance")

	// ErrEdgeBounds indicates an edge endpoint index outside 0..n-1.
	ErrEdgeBounds = errors.New("core: edge endpoint out of node range")
)

// Ground-truth label classes. Any label ≥ 1 is a foreground instance id.
const (
	// BackgroundLabel marks a point that belongs to no instance.
	BackgroundLabel int64 = 0

	// AmbiguousLabel marks a foreground point whose instance is unknown.
	AmbiguousLabel int64 = -1
)

// Edge is one MST edge: endpoints U and V (node indices) merged at
// distance Dist. An MST over n nodes is a []Edge of length n-1; kernels
// consume it strictly in slice order.
type Edge struct {
	// U is the first endpoint's node index.
	U int

	// V is the second endpoint's node index.
	V int

	// Dist is the merge distance; non-negative.
	Dist float64
}

// Foreground reports whether label is a foreground instance id (≥ 1).
func Foreground(label int64) bool { return label >= 1 }

// Background reports whether label marks background (exactly 0).
func Background(label int64) bool { return label == BackgroundLabel }

// Ambiguous reports whether label marks ambiguous foreground (exactly -1).
func Ambiguous(label int64) bool { return label == AmbiguousLabel }
