package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataSeedIsIndependentOfSearchSeed(t *testing.T) {
	for _, seed := range []int64{1, 42, -7, 1 << 40} {
		assert.NotEqual(t, seed, dataSeed(seed))
		assert.Equal(t, dataSeed(seed), dataSeed(seed))

		data := rand.New(rand.NewSource(dataSeed(seed)))
		search := rand.New(rand.NewSource(seed))
		assert.NotEqual(t, data.Float64(), search.Float64())
	}
}
