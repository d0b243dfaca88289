package dsu

import "errors"

var (
	// ErrSameSet indicates Link was called with two equal roots: the
	// caller tried to merge a cluster with itself, which in this module
	// means the edge list upstream is not a tree.
	ErrSameSet = errors.New("dsu: link on members of the same set")

	// ErrIndexRange indicates an index outside the arena's 0..n-1 range.
	ErrIndexRange = errors.New("dsu: index out of range")
)
