// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Constructor names, used to prefix errors.
const (
	MethodNodes           = "Nodes"
	MethodPath            = "Path"
	MethodCycle           = "Cycle"
	MethodStar            = "Star"
	MethodComplete        = "Complete"
	MethodRandomSparse    = "RandomSparse"
	MethodRandomConnected = "RandomConnected"
	MethodReference       = "Reference"
)

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCycleNodes is the smallest size for a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is one centre plus one leaf.
const MinStarNodes = 2

// MinCompleteNodes allows the trivial K_1.
const MinCompleteNodes = 1

// MinRandomNodes is the smallest node count for stochastic constructors.
const MinRandomNodes = 1

// StarCenter is the hub node of Star.
const StarCenter = 0

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxSampleAttemptsPerEdge bounds rejection sampling in RandomConnected.
const maxSampleAttemptsPerEdge = 64
