// SPDX-License-Identifier: MIT

// Package render writes plain-text views of a city network and of route
// query results.
//
//   - Path:   1 -> 4 -> 15
//   - Graph:  a ruler with one cell per stop (category initial + id, e.g.
//     T1), then one line per street: T1 --> A2 (D: 5, T: 3, RL: 1)
//   - Report: the path listing, optional scores and the most convenient
//     path, or "No paths found." / "Invalid start or end node."
//   - Best:   just the final line of Report
//
// All functions return the first write error.
package render
