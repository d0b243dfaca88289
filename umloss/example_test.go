package umloss_test

import (
	"fmt"

	"github.com/katalvlaran/ultrametric/core"
	"github.com/katalvlaran/ultrametric/umloss"
)

// ExampleLossGradient walks the spec'd 3-node chain: two nodes of one
// instance merge first, the background node joins later, so the margin
// is satisfied and the loss vanishes.
func ExampleLossGradient() {
	// 1. MST over 3 nodes, sorted by distance.
	edges := []core.Edge{
		{U: 0, V: 1, Dist: 0.5},
		{U: 1, V: 2, Dist: 1.0},
	}
	// 2. Ground truth: one foreground instance plus background.
	labels := []int64{1, 1, 0}

	// 3. Evaluate with a 0.1 margin.
	opts := umloss.NewOptions(umloss.WithAlpha(0.1))
	res, err := umloss.LossGradient(edges, labels, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("loss=%g pos=%g neg=%g\n", res.Loss, res.TotalPairsPos, res.TotalPairsNeg)
	fmt.Printf("ratioPos=%v ratioNeg=%v\n", res.RatioPos, res.RatioNeg)
	// Output:
	// loss=0 pos=1 neg=2
	// ratioPos=[1 0] ratioNeg=[0 1]
}

// ExampleLossGradient_margin shows a violated margin: the positive pair
// merges last, so both negative merges below it are penalized and the
// gradient pushes the offending edges apart.
func ExampleLossGradient_margin() {
	edges := []core.Edge{
		{U: 0, V: 1, Dist: 0.5},
		{U: 1, V: 2, Dist: 1.0},
	}
	labels := []int64{1, 0, 1} // the instance is split around background

	opts := umloss.NewOptions(umloss.WithAlpha(0.1))
	res, err := umloss.LossGradient(edges, labels, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("loss=%.3f\n", res.Loss)
	fmt.Printf("gradients=[%.1f %.1f]\n", res.Gradients[0], res.Gradients[1])
	// Output:
	// loss=0.185
	// gradients=[-0.6 0.6]
}

// ExampleLossGradient_errNotSpanning demonstrates the fatal contract
// violation raised when an edge joins two already-merged nodes.
func ExampleLossGradient_errNotSpanning() {
	edges := []core.Edge{
		{U: 0, V: 1, Dist: 0.5},
		{U: 1, V: 0, Dist: 0.7},
	}
	labels := []int64{1, 1, 0}

	_, err := umloss.LossGradient(edges, labels, nil)
	fmt.Println(err)
	// Output: umloss: edge list is not a spanning tree: edge 1 (1-0): dsu: link on members of the same set: root 0
}
