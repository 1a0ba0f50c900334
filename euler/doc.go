// SPDX-License-Identifier: MIT
// Package euler constructs Eulerian trails: walks that use every edge of an
// undirected graph exactly once.
//
// Validate applies Euler's theorem. A connected graph has an Eulerian
// circuit when every degree is even and an open Eulerian path when exactly
// two degrees are odd; any other odd count yields *OddDegreeError, which
// matches ErrEulerCondition and names each offending vertex with its degree.
// Connectivity covers every vertex, so an isolated vertex fails with
// ErrDisconnected.
//
// Two constructions are provided and return the same Trail shape:
//
//   - Fleury walks edge by edge and never crosses a bridge of the remaining
//     graph while another edge is available. O(E·(V+E)).
//   - Hierholzer stitches closed sub-walks with an explicit stack. O(V+E).
//
// Both produce a step-by-step Trace (vertex, edge, weight, status) for
// display. Neither mutates the input graph. An open path starts at start if
// start is odd, otherwise at the first odd vertex in insertion order.
package euler
