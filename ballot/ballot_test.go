package ballot_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/core"
)

func TestFirstAndLast(t *testing.T) {
	assert.Equal(t, []int{0, 1}, ballot.First{}.Draw(5, 2))
	assert.Equal(t, []int{0, 1, 2}, ballot.First{}.Draw(3, 7), "uncontested draw selects everyone")
	assert.Empty(t, ballot.First{}.Draw(4, 0))

	assert.Equal(t, []int{3, 4}, ballot.Last{}.Draw(5, 2))
	assert.Equal(t, []int{0, 1}, ballot.Last{}.Draw(2, 9))
}

// TestRandom_ValidSelections checks every draw is a proper subset of the
// requested size.
func TestRandom_ValidSelections(t *testing.T) {
	b := ballot.NewSeeded(42)
	for n := 0; n <= 8; n++ {
		for limit := 0; limit <= 9; limit++ {
			picked := b.Draw(n, limit)
			require.NoError(t, ballot.Validate(picked, n, limit), "n=%d limit=%d picked=%v", n, limit, picked)
		}
	}
}

// TestRandom_SeedDeterminism locks in that equal seeds give equal streams.
func TestRandom_SeedDeterminism(t *testing.T) {
	a := ballot.NewSeeded(7)
	b := ballot.NewSeeded(7)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Draw(10, 3), b.Draw(10, 3))
	}

	// seed 0 follows the default-seed policy
	z1 := ballot.NewSeeded(0)
	z2 := ballot.NewRandom(nil)
	require.Equal(t, z1.Draw(6, 1), z2.Draw(6, 1))
}

// TestRandom_CoversAllCandidates makes sure no candidate is starved.
func TestRandom_CoversAllCandidates(t *testing.T) {
	b := ballot.NewRandom(rand.New(rand.NewSource(99)))
	hits := make([]int, 4)
	for i := 0; i < 400; i++ {
		picked := b.Draw(4, 1)
		require.Len(t, picked, 1)
		hits[picked[0]]++
	}
	for i, h := range hits {
		assert.Positive(t, h, "candidate %d never drawn", i)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, ballot.Validate([]int{2, 0}, 3, 2))
	assert.ErrorIs(t, ballot.Validate([]int{0}, 3, 2), ballot.ErrBadDraw)
	assert.ErrorIs(t, ballot.Validate([]int{1, 1}, 3, 2), ballot.ErrBadDraw)
	assert.ErrorIs(t, ballot.Validate([]int{0, 3}, 3, 2), ballot.ErrBadDraw)
}

func TestSelect(t *testing.T) {
	names := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, ballot.Select[string](ballot.First{}, names, 2))
	assert.Equal(t, []string{"c"}, ballot.Select[string](ballot.Last{}, names, 1))
	assert.Equal(t, names, ballot.Select[string](ballot.NewSeeded(3), names, 10))
}

func TestFunc(t *testing.T) {
	var gotN, gotLimit int
	f := ballot.Func(func(n, limit int) []int {
		gotN, gotLimit = n, limit
		return []int{n - 1}
	})
	assert.Equal(t, []int{4}, f.Draw(5, 1))
	assert.Equal(t, 5, gotN)
	assert.Equal(t, 1, gotLimit)
}

func TestRecorder(t *testing.T) {
	r := ballot.NewRecorder(nil)
	r.Draw(2, 5)
	r.Draw(3, 1)
	r.Draw(4, 2)

	assert.Equal(t, 3, r.Draws)
	assert.Equal(t, 2, r.Contested)
	require.Len(t, r.History, 2)
	assert.Equal(t, ballot.Draw{N: 3, Limit: 1, Picked: []int{0}}, r.History[0])

	r.Reset()
	assert.Zero(t, r.Draws)
	assert.Nil(t, r.History)
}

func TestSeedFor(t *testing.T) {
	votes := core.VotesOf(40, 30, 20, 10)
	s1 := ballot.SeedFor(19, votes)
	s2 := ballot.SeedFor(19, core.VotesOf(40, 30, 20, 10))
	require.Equal(t, s1, s2, "same input must give same seed")

	assert.NotEqual(t, s1, ballot.SeedFor(18, votes), "seat count is part of the input")
	assert.NotEqual(t, s1, ballot.SeedFor(19, core.VotesOf(30, 40, 20, 10)), "party order is part of the input")
}
