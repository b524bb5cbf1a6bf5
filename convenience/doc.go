// SPDX-License-Identifier: MIT

// Package convenience scores candidate paths of a core.Graph and selects the
// most convenient one.
//
// Score:
//
//	For each consecutive pair (a, b) of a path, take the first edge a→b and add
//
//	    wD/(distance+ε) + wT/(traffic+ε) + wR/(redLights+ε)
//
//	with wD = 0.5, wT = 0.2, wR = 0.3 and ε = 0.01. A zero-edge path scores 0.
//
// Selection:
//
//	The selector returns the path with the minimum score. Ties go to the
//	first path encountered (strict < comparison). An empty candidate set
//	yields ErrNoPath.
//
// Inverse terms:
//
//	Every term is an inverse, so a SMALL attribute contributes a LARGE
//	amount. Minimising the sum therefore prefers edges with LARGE distance,
//	traffic and red-light counts, and prefers paths with FEWER edges. The
//	defaults are fixed so scores stay comparable across releases; use
//	WithWeights/WithEpsilon to experiment.
//
// Errors:
//
//	ErrEmptyPath   – path with no nodes
//	ErrBrokenPath  – consecutive pair with no edge in the graph
//	ErrNoPath      – nothing to select from
package convenience
