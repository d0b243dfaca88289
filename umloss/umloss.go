// Package umloss implements the ultrametric loss/gradient kernel over
// caller-supplied MST edges and ground-truth labels.
package umloss

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ultrametric/core"
)

// LossGradient evaluates the ultrametric loss and per-edge gradient for
// an MST over len(labels) nodes. edges must hold exactly
// len(labels)-1 entries sorted by non-decreasing Dist, each joining two
// previously separate clusters.
//
// A nil opts uses DefaultOptions. The returned Result owns freshly
// allocated slices; use LossGradientInto to reuse caller-owned buffers.
//
// Example:
//
//	opts := umloss.NewOptions(umloss.WithAlpha(0.1))
//	res, err := umloss.LossGradient(edges, labels, &opts)
func LossGradient(edges []core.Edge, labels []int64, opts *Options) (*Result, error) {
	res := NewResult(len(labels))
	if err := LossGradientInto(edges, labels, opts, res); err != nil {
		return nil, err
	}

	return res, nil
}

// LossGradientInto is LossGradient over a caller-owned Result: the
// three slices must already have length len(labels)-1. Nothing is
// retained between calls; all scratch state is allocated and released
// inside.
//
// Steps:
//  1. Validate shapes, margin, endpoint bounds and (by default) the
//     non-decreasing distance precondition.
//  2. Count positive/negative pairs per edge via incremental histogram
//     merging (countPairs), then normalize each side by its total
//     when that total is strictly positive.
//  3. Run the forward and backward sliding-window passes.
//  4. Assemble the scalar loss and the analytic gradient.
//
// Complexity: O(n·h + n) time, O(n) scratch memory.
func LossGradientInto(edges []core.Edge, labels []int64, opts *Options, res *Result) error {
	// 1. Apply options or defaults.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Alpha < 0 {
		return fmt.Errorf("%w: got %g", ErrBadAlpha, o.Alpha)
	}

	n := len(labels)
	m := n - 1
	if n == 0 {
		m = 0
	}
	if len(edges) != m {
		return fmt.Errorf("%w: got %d edges for %d nodes", ErrEdgeCount, len(edges), n)
	}
	if len(res.Gradients) != m || len(res.RatioPos) != m || len(res.RatioNeg) != m {
		return fmt.Errorf("%w: got %d/%d/%d for %d nodes",
			ErrBufferSize, len(res.Gradients), len(res.RatioPos), len(res.RatioNeg), n)
	}

	// Degenerate tree: nothing merges, nothing to learn.
	res.Loss = 0
	res.TotalPairsPos = 0
	res.TotalPairsNeg = 0
	if m == 0 {
		return nil
	}

	if err := core.VerifyBounds(edges, n); err != nil {
		return err
	}
	if o.ValidateOrder {
		if err := core.VerifySorted(edges); err != nil {
			return err
		}
	}

	// 2. Raw pair counts per edge, then totals and in-place
	//    normalization. A zero total leaves that side's ratios at their
	//    raw zeros, which zeroes every downstream term.
	if err := countPairs(edges, labels, res.RatioPos, res.RatioNeg); err != nil {
		return err
	}
	res.TotalPairsPos = floats.Sum(res.RatioPos)
	res.TotalPairsNeg = floats.Sum(res.RatioNeg)
	if res.TotalPairsPos > 0 {
		floats.Scale(1/res.TotalPairsPos, res.RatioPos)
	}
	if res.TotalPairsNeg > 0 {
		floats.Scale(1/res.TotalPairsNeg, res.RatioNeg)
	}

	// 3. Windowed moment sums, forward over ratioNeg and backward over
	//    ratioPos.
	scoresA := make([]float64, m)
	scoresB := make([]float64, m)
	scoresC := make([]float64, m)
	forwardScores(edges, res.RatioNeg, o.Alpha, scoresA, scoresB, scoresC)

	scoresD := make([]float64, m)
	scoresE := make([]float64, m)
	backwardScores(edges, res.RatioPos, o.Alpha, scoresD, scoresE)

	// 4. Loss: per positive edge i, the expanded hinge
	//    Σ_j ratioNeg[j]·(dist(i)+alpha-dist(j))² restricted by the
	//    forward window to dist(j) < dist(i) - alpha.
	loss := 0.0
	alpha := o.Alpha
	for i, e := range edges {
		dist := e.Dist
		loss += res.RatioPos[i] * ((dist+alpha)*(dist+alpha)*scoresA[i] -
			2*(dist+alpha)*scoresB[i] +
			scoresC[i])
	}
	res.Loss = loss

	// Gradient per edge. The -ratioNeg[i] / -ratioPos[i] terms remove
	// edge i's own contribution when alpha is small enough for the
	// window boundary to include the edge itself; they depend on the
	// passes' strict comparison boundaries.
	for i, e := range edges {
		dist := e.Dist
		res.Gradients[i] = 2*res.RatioPos[i]*((alpha+dist)*(scoresA[i]-res.RatioNeg[i])-
			(scoresB[i]-dist*res.RatioNeg[i])) -
			2*res.RatioNeg[i]*((alpha-dist)*(scoresD[i]-res.RatioPos[i])+
				(scoresE[i]-dist*res.RatioPos[i]))
	}

	return nil
}
