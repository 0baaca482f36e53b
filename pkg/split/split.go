package split

import "math/rand"

// Indices partitions the row indices 0..n-1 into train and test sets by
// ratio. The permutation comes from a generator seeded per call, so the same
// seed always yields the same partition. Splitting indices instead of the
// rows themselves keeps row identity, so side data like category labels
// never has to be kept aligned by position.
func Indices(n int, testRatio float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(n)
	nTest := int(float64(n) * testRatio)
	test = append(test, indices[:nTest]...)
	train = append(train, indices[nTest:]...)
	return train, test
}
