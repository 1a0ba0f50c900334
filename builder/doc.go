// SPDX-License-Identifier: MIT

// Package builder turns the editable store into the algorithm-ready
// core.Graph, and provides deterministic map fixtures that populate a store
// with classic topologies placed around a geographic center.
//
// The package offers two layers:
//
//   - Build(src): the one conversion the algorithm engine relies on.
//     Vertices keep their store order, Index, coordinates and names; edges
//     keep their store order and weights. Fewer than 2 vertices fails with
//     ErrTooFewVertices, zero edges with ErrNoEdges; both match
//     ErrInsufficientGraph.
//   - Fixtures: Constructor closures (Complete, Cycle, Path, Star, Wheel)
//     composed by Populate/BuildStore, configured by BuilderOption:
//     – WithCenter:     ring center (default HCMC center 10.7769, 106.7009).
//     – WithRadiusKm:   ring radius in kilometers (default 2).
//     – WithNamePrefix: vertex name prefix (default "P").
//     – WithWeightFn:   explicit edge weights; default is the Haversine weight.
//     – WithSeed/WithRand: RNG for stochastic weight functions.
//
// Guarantees:
//
//   - Deterministic: same store contents ⇒ identical graph; same options and
//     constructor order ⇒ identical fixture.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels wrapped with the constructor name.
package builder
