package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample(r *RNG, n int, p float64) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = r.Chance(p)
	}
	return out
}

func TestRNGDeterministic(t *testing.T) {
	assert.Equal(t, sample(NewRNG(7), 64, 0.5), sample(NewRNG(7), 64, 0.5))
	assert.NotEqual(t, sample(NewRNG(7), 64, 0.5), sample(NewRNG(8), 64, 0.5))
}

func TestChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0))
		assert.False(t, r.Chance(-1))
		assert.True(t, r.Chance(1))
		assert.True(t, r.Chance(2))
	}
}

func TestBoolProducesBothValues(t *testing.T) {
	r := NewRNG(42)
	seen := map[bool]bool{}
	for i := 0; i < 64; i++ {
		seen[r.Bool()] = true
	}
	assert.Len(t, seen, 2)
}
