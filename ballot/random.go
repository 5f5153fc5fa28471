package ballot

import (
	"math/rand"
	"slices"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// Random draws uniformly at random without replacement.
type Random struct {
	rng *rand.Rand
}

// NewRandom wraps rng. A nil rng falls back to the default seed.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	return &Random{rng: rng}
}

// NewSeeded returns a Random ballot with a deterministic stream.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSeeded(seed int64) *Random {
	return &Random{rng: rngFromSeed(seed)}
}

// Draw selects min(n, limit) distinct indices.
//
// When every candidate fits (n <= limit) no randomness is consumed, so the
// stream only advances on contested draws. Otherwise a partial Fisher–Yates
// shuffle picks the first k positions; the result is returned sorted.
//
// Complexity: O(n) time and space.
func (r *Random) Draw(n, limit int) []int {
	k := size(n, limit)
	if k == n {
		return identity(n)
	}

	var (
		idx = identity(n)
		i   int
		j   int
	)
	for i = 0; i < k; i++ {
		j = i + r.rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := idx[:k]
	slices.Sort(out)
	return out
}

// Perm returns a random permutation of 0..n-1 from the same stream.
func (r *Random) Perm(n int) []int {
	return r.rng.Perm(n)
}

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
