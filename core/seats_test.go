package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apportion/core"
)

// TestSeats_Constructors verifies the three construction modes.
func TestSeats_Constructors(t *testing.T) {
	l := core.Limited(4)
	require.Equal(t, core.Count(0), l.Count())
	limit, ok := l.Limit()
	require.True(t, ok, "Limited must report a bound")
	require.Equal(t, core.Count(4), limit)

	u := core.Unlimited()
	_, ok = u.Limit()
	require.False(t, ok, "Unlimited must not report a bound")
	require.True(t, u.HasCandidates())

	f := core.Filled(7)
	require.Equal(t, core.Count(7), f.Count())
	_, ok = f.Limit()
	require.False(t, ok)
}

// TestSeats_Transfer checks that a transfer moves exactly one seat and
// respects the candidate limit.
func TestSeats_Transfer(t *testing.T) {
	pool := core.Filled(3)
	party := core.Limited(2)

	party.Transfer(&pool)
	party.Transfer(&pool)
	assert.Equal(t, core.Count(2), party.Count())
	assert.Equal(t, core.Count(1), pool.Count())
	assert.False(t, party.HasCandidates(), "party is at its limit")

	require.PanicsWithError(t, core.ErrNoCandidates.Error(), func() {
		party.Transfer(&pool)
	})
	// a failed transfer leaves both sides untouched
	assert.Equal(t, core.Count(2), party.Count())
	assert.Equal(t, core.Count(1), pool.Count())
}

// TestSeats_TransferFromEmptyPool ensures an empty pool cannot go negative.
func TestSeats_TransferFromEmptyPool(t *testing.T) {
	pool := core.Filled(0)
	party := core.Unlimited()

	require.PanicsWithError(t, core.ErrPoolExhausted.Error(), func() {
		party.Transfer(&pool)
	})
	assert.Equal(t, core.Count(0), party.Count())
}

// TestSeats_ReverseTransfer takes a seat back from a party into a pool,
// which is how the majority correction revokes a seat.
func TestSeats_ReverseTransfer(t *testing.T) {
	party := core.Filled(2)
	pool := core.Filled(0)

	pool.Transfer(&party)
	assert.Equal(t, core.Count(1), party.Count())
	assert.Equal(t, core.Count(1), pool.Count())
}

// TestSeats_CompareIgnoresLimit locks in that ordering only looks at the
// awarded count.
func TestSeats_CompareIgnoresLimit(t *testing.T) {
	pool := core.Filled(10)
	a := core.Limited(5)
	b := core.Unlimited()
	a.Transfer(&pool)
	b.Transfer(&pool)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Cmp(b))

	b.Transfer(&pool)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
}

func TestSeats_String(t *testing.T) {
	pool := core.Filled(5)
	l := core.Limited(5)
	l.Transfer(&pool)
	l.Transfer(&pool)

	assert.Equal(t, "2/5", l.String())
	assert.Equal(t, "3", pool.String())
}

// TestTotals covers the slice helpers.
func TestTotals(t *testing.T) {
	votes := core.VotesOf(40, 30, 20, 10)
	assert.Equal(t, core.Count(100), core.TotalVotes(votes))

	seats := []core.Seats{core.Filled(3), core.Filled(0), core.Filled(2)}
	assert.Equal(t, core.Count(5), core.TotalSeats(seats))
	assert.Equal(t, []core.Count{3, 0, 2}, core.Counts(seats))

	empty := core.UnlimitedSeats(3)
	require.Len(t, empty, 3)
	for _, s := range empty {
		_, ok := s.Limit()
		assert.False(t, ok)
		assert.Equal(t, core.Count(0), s.Count())
	}
}
