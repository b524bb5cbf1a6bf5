// SPDX-License-Identifier: MIT

package builder

// Constructor names used to prefix errors.
const (
	MethodStops    = "Stops"
	MethodForward  = "Forward"
	MethodCorridor = "Corridor"
	MethodSparse   = "Sparse"
	MethodLinks    = "Links"
)

// Stop categories assigned by DefaultCategoryFn.
const (
	CategoryBusStop   = "Bus Stop"
	CategoryTaxiStand = "Taxi Stand"
	CategoryAutoStand = "Auto Stand"
)

// DefaultStops is the size of the standard city.
const DefaultStops = 15

// MinStops is the smallest meaningful stop count.
const MinStops = 1

// Default attribute ranges, inclusive.
const (
	DefaultMinDistance = 3
	DefaultMaxDistance = 10
	DefaultMinTraffic  = 2
	DefaultMaxTraffic  = 8
	DefaultMinRedLight = 0
	DefaultMaxRedLight = 4
)

// Probability bounds for Sparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// corridorLinks is the sparse street layout over stops 1..15: a 3-wide
// grid for stops 1..12 followed by a tail 12→13→14→15.
var corridorLinks = [][2]int{
	{1, 2}, {1, 4}, {2, 3}, {2, 5}, {3, 6},
	{4, 5}, {4, 7}, {5, 6}, {5, 8}, {6, 9},
	{7, 8}, {7, 10}, {8, 9}, {8, 11}, {9, 12},
	{10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15},
}

// CorridorStops is the number of stops the corridor layout spans.
const CorridorStops = 15
