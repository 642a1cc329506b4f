package subsequence

import (
	"fmt"
	"math/rand"
)

// Random returns a pseudo-random sequence of the given size with every
// element in [0, max]. The same options always produce the same sequence.
// Returns ErrBadSize if size < 0.
// Complexity: O(size).
func Random(size int, opts ...Option) (Sequence, error) {
	if size < 0 {
		return nil, fmt.Errorf("Random(%d): %w", size, ErrBadSize)
	}
	cfg := randomConfig{seed: DefaultSeed, maxElement: DefaultMaxElement}
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.seed))
	seq := make(Sequence, size)
	for i := range seq {
		seq[i] = rng.Intn(cfg.maxElement + 1)
	}

	return seq, nil
}
