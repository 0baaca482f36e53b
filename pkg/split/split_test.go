package split_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/split"
)

func TestIndicesDeterministicForSeed(t *testing.T) {
	train1, test1 := split.Indices(100, 0.2, 42)
	train2, test2 := split.Indices(100, 0.2, 42)
	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)
}

func TestIndicesDifferForDifferentSeeds(t *testing.T) {
	_, test1 := split.Indices(100, 0.2, 42)
	_, test2 := split.Indices(100, 0.2, 43)
	assert.NotEqual(t, test1, test2)
}

func TestIndicesPartitionTheRows(t *testing.T) {
	train, test := split.Indices(10, 0.2, 42)
	require.Len(t, test, 2)
	require.Len(t, train, 8)

	all := append(append([]int(nil), train...), test...)
	sort.Ints(all)
	for i, v := range all {
		assert.Equal(t, i, v)
	}
}

func TestIndicesTinySet(t *testing.T) {
	train, test := split.Indices(3, 0.34, 42)
	assert.Len(t, test, 1)
	assert.Len(t, train, 2)

	// Default ratio rounds down to an empty heldout set on 3 rows.
	train, test = split.Indices(3, 0.2, 42)
	assert.Empty(t, test)
	assert.Len(t, train, 3)
}
