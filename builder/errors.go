// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Runtime code never panics; validation panics are confined to WithX options.
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability / ErrTooManyEdges → ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrTooManyEdges indicates a request for more edges than a simple graph on
// the given nodes can hold.
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not complete a topology
// (nil constructor, or a bounded sampling loop gave up).
var ErrConstructFailed = errors.New("builder: construction failed")
