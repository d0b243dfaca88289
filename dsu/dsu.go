// Package dsu provides the arena-style union-find used by the umloss
// and mstprune kernels.
package dsu

import "fmt"

// DisjointSets is a union-find arena over indices 0..n-1.
// The zero value is unusable; construct with New.
type DisjointSets struct {
	// parent[i] is i's parent in the forest; parent[i] == i at roots.
	parent []int

	// rank[i] upper-bounds the height of the tree rooted at i.
	rank []int
}

// New returns a DisjointSets of n singleton sets, each index its own root.
//
// Complexity: O(n).
func New(n int) *DisjointSets {
	if n < 0 {
		n = 0
	}
	d := &DisjointSets{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the arena capacity n.
func (d *DisjointSets) Len() int { return len(d.parent) }

// MakeSet resets x to a singleton root. New already does this for every
// index; MakeSet exists for callers that recycle an arena in place.
func (d *DisjointSets) MakeSet(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d of %d", ErrIndexRange, x, len(d.parent))
	}
	d.parent[x] = x
	d.rank[x] = 0

	return nil
}

// Find returns the representative of x's set, compressing the traversed
// path with iterative grandparent hops.
//
// Find panics on out-of-range x like any slice access would; bounds are
// the caller's lookup tables' responsibility, checked once at kernel
// entry rather than on every hop.
func (d *DisjointSets) Find(x int) int {
	for d.parent[x] != x {
		// Point x at its grandparent, then step there.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Link unions the sets rooted at a and b by rank and returns the
// surviving root. Both arguments must be roots (as returned by Find)
// and must differ; equal roots return ErrSameSet, the signal that the
// caller's edge list merged a cluster with itself.
func (d *DisjointSets) Link(a, b int) (int, error) {
	if a < 0 || a >= len(d.parent) || b < 0 || b >= len(d.parent) {
		return -1, fmt.Errorf("%w: link(%d, %d) of %d", ErrIndexRange, a, b, len(d.parent))
	}
	if a == b {
		return -1, fmt.Errorf("%w: root %d", ErrSameSet, a)
	}

	// Attach the lower-rank root under the higher-rank one.
	if d.rank[a] < d.rank[b] {
		a, b = b, a
	}
	d.parent[b] = a
	if d.rank[a] == d.rank[b] {
		d.rank[a]++
	}

	return a, nil
}

// Union finds the roots of x and y and links them, returning the
// surviving root. Unlike Link, equal sets are not an error here: the
// root is returned with ok == false and no merge happens.
func (d *DisjointSets) Union(x, y int) (root int, ok bool) {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return rx, false
	}
	root, _ = d.Link(rx, ry)

	return root, true
}
