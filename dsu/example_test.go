package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/ultrametric/dsu"
)

// ExampleDisjointSets_Link replays three Kruskal-ordered merges over
// five nodes and shows how Link tracks the surviving root.
func ExampleDisjointSets_Link() {
	// 1. Five singleton clusters.
	d := dsu.New(5)

	// 2. Merge pairs the way an MST walk would: always via current roots.
	edges := [][2]int{{0, 1}, {2, 3}, {1, 3}}
	for _, e := range edges {
		root, err := d.Link(d.Find(e[0]), d.Find(e[1]))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("merged %d-%d into root %d\n", e[0], e[1], root)
	}

	// 3. Node 4 was never merged and remains its own root.
	fmt.Println("node 4 root:", d.Find(4))
	// Output:
	// merged 0-1 into root 0
	// merged 2-3 into root 2
	// merged 1-3 into root 0
	// node 4 root: 4
}

// ExampleDisjointSets_Link_sameSet shows the contract violation raised
// when an edge joins two nodes already in one cluster.
func ExampleDisjointSets_Link_sameSet() {
	d := dsu.New(2)
	if _, err := d.Link(0, 1); err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err := d.Link(d.Find(0), d.Find(1))
	fmt.Println(err)
	// Output: dsu: link on members of the same set: root 0
}
