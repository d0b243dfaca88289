package core_test

import (
	"fmt"

	"github.com/katalvlaran/ultrametric/core"
)

// ExampleVerifySorted shows the fail-fast check for the edge-order
// precondition both kernels rely on.
func ExampleVerifySorted() {
	sorted := []core.Edge{
		{U: 0, V: 1, Dist: 0.2},
		{U: 1, V: 2, Dist: 0.9},
	}
	fmt.Println(core.VerifySorted(sorted))

	swapped := []core.Edge{sorted[1], sorted[0]}
	fmt.Println(core.VerifySorted(swapped))
	// Output:
	// <nil>
	// core: MST edges not sorted by non-decreasing distance: edge 1 has distance 0.2 after 0.9
}

// ExampleForeground classifies the three ground-truth label classes.
func ExampleForeground() {
	for _, label := range []int64{3, core.BackgroundLabel, core.AmbiguousLabel} {
		fmt.Println(label, core.Foreground(label), core.Background(label), core.Ambiguous(label))
	}
	// Output:
	// 3 true false false
	// 0 false true false
	// -1 false false true
}
