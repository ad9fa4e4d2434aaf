// SPDX-License-Identifier: MIT

// Package builder composes deterministic graph fixtures for the MST
// algorithms: fixed topologies, seeded random graphs and the 5-node
// demonstration graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): runs constructors in order and builds a *core.Graph.
//     – BuildEdges(bopts, cons...):       same, but returns (n, edges) for export.
//   - Constructors (Constructor):
//     – Nodes(n)                  isolated nodes 0..n-1.
//     – Path(n), Cycle(n), Star(n), Complete(n).
//     – RandomSparse(n, p)        Erdős–Rényi-like, may be disconnected.
//     – RandomConnected(n, extra) random spanning tree plus extra edges.
//     – Reference()               the demonstration graph (MST weight 24).
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand       RNG for stochastic constructors.
//     – WithWeightFn, WithConstantWeight, WithUniformWeight.
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order yield identical edge lists.
//   - Simple graphs: constructors never emit loops; a pair emitted twice keeps its first weight.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors (ErrTooFewVertices, ...).
//   - Weight limits are enforced by core: pass core.WithMaxWeight in gopts.
package builder
