package mstprune

import "errors"

var (
	// ErrEdgeCount indicates the MST does not hold exactly n-1 edges.
	ErrEdgeCount = errors.New("mstprune: MST must hold exactly numNodes-1 edges")

	// ErrComponentCount indicates an empty component list.
	ErrComponentCount = errors.New("mstprune: at least one component required")

	// ErrUnknownLabel indicates an edge endpoint whose label appears in
	// no component entry, so the edge cannot be mapped to the coarse view.
	ErrUnknownLabel = errors.New("mstprune: node label missing from components")

	// ErrOutputSize indicates a caller-owned output buffer shorter than
	// the numComponents-1 kept edges.
	ErrOutputSize = errors.New("mstprune: output buffer must hold numComponents-1 edges")

	// ErrInconsistentComponents indicates the walk kept a number of
	// edges other than numComponents-1: the labeling/component set
	// contradicts the given MST and no valid coarse spanning tree exists.
	ErrInconsistentComponents = errors.New("mstprune: labels and components inconsistent with MST")
)
