// Package builder_test contains unit tests for the WeightFn implementations,
// covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/parprim/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(0), builder.ConstantWeightFn(0)(nil))

	u := builder.UniformWeightFn(3, 6)
	assert.Equal(t, int64(3), u(nil), "nil rng yields min")

	rng := rand.New(rand.NewSource(5))
	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(6))
		seen[w] = true
	}
	assert.Len(t, seen, 4, "every value of 3..6 drawn")

	assert.Equal(t, int64(8), builder.UniformWeightFn(8, 8)(rng))
}
