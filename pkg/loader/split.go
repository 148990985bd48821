package loader

import (
	"math"
	"math/rand/v2"
)

// DefaultSeed is the fixed seed every training run uses for its split.
const DefaultSeed uint64 = 42

// TrainTestSplit permutes the row indices 0..n-1 with a generator seeded
// by seed and returns the training and held-out partitions. The held-out
// size is ceil(n*testRatio). The same n, ratio and seed always yield the
// same partitions.
func TrainTestSplit(n int, testRatio float64, seed uint64) (train, test []int) {
	rng := rand.New(rand.NewPCG(seed, seed))
	indices := rng.Perm(n)
	nTest := int(math.Ceil(float64(n) * testRatio))
	nTest = min(max(nTest, 0), n)
	return indices[nTest:], indices[:nTest]
}
