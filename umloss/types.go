// Package umloss defines configuration options, sentinel errors and the
// Result carrier for the ultrametric loss/gradient kernel.
package umloss

import "errors"

var (
	// ErrEdgeCount indicates the MST does not hold exactly n-1 edges.
	ErrEdgeCount = errors.New("umloss: MST must hold exactly numNodes-1 edges")

	// ErrBadAlpha indicates a negative margin.
	ErrBadAlpha = errors.New("umloss: margin alpha must be non-negative")

	// ErrNotSpanning indicates an MST edge joined two nodes already in
	// one cluster: the edge list is not a tree, or not in valid merge
	// order, and any loss computed from it would be meaningless.
	ErrNotSpanning = errors.New("umloss: edge list is not a spanning tree")

	// ErrBufferSize indicates a caller-owned output buffer whose length
	// is not numNodes-1.
	ErrBufferSize = errors.New("umloss: output buffer length must be numNodes-1")
)

// Options configures the loss/gradient kernel.
//
// Fields:
//   - Alpha         — non-negative margin: a negative pair merging more
//     than Alpha below a positive pair's distance costs nothing.
//   - ValidateOrder — verify the non-decreasing distance precondition
//     up front. The check is O(n); disable it only on hot paths where
//     the producer already guarantees ordering, because a silent
//     violation corrupts results with no other symptom.
//
// Example:
//
//	opts := umloss.DefaultOptions()
//	opts.Alpha = 0.1
//	res, err := umloss.LossGradient(edges, labels, &opts)
type Options struct {
	Alpha         float64
	ValidateOrder bool
}

// Option mutates an Options value; use with NewOptions.
type Option func(*Options)

// WithAlpha returns an Option that sets the margin Alpha.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		o.Alpha = alpha
	}
}

// WithOrderValidation returns an Option that toggles the up-front
// distance-ordering check.
func WithOrderValidation(validate bool) Option {
	return func(o *Options) {
		o.ValidateOrder = validate
	}
}

// DefaultOptions returns the default setup:
//
//	– Alpha         = 0 (no margin)
//	– ValidateOrder = true (fail fast on unsorted input).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Alpha:         0,
		ValidateOrder: true,
	}
}

// NewOptions builds Options from DefaultOptions plus the given overrides.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// Result carries every output of one loss/gradient evaluation. The
// three slices all have length numNodes-1 and are indexed by edge.
type Result struct {
	// Loss is the scalar ultrametric loss.
	Loss float64

	// Gradients holds ∂Loss/∂dist(i) for every edge i.
	Gradients []float64

	// RatioPos[i] is edge i's share of all positive pairs (sums to 1
	// across edges whenever TotalPairsPos > 0).
	RatioPos []float64

	// RatioNeg[i] is edge i's share of all negative pairs (sums to 1
	// across edges whenever TotalPairsNeg > 0).
	RatioNeg []float64

	// TotalPairsPos is the raw count of positive pairs in the tree.
	TotalPairsPos float64

	// TotalPairsNeg is the raw count of negative pairs in the tree.
	TotalPairsNeg float64
}

// NewResult returns a Result with all three edge slices allocated for
// an MST over numNodes nodes.
func NewResult(numNodes int) *Result {
	m := numNodes - 1
	if m < 0 {
		m = 0
	}

	return &Result{
		Gradients: make([]float64, m),
		RatioPos:  make([]float64, m),
		RatioNeg:  make([]float64, m),
	}
}
