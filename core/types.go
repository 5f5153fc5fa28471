package core

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors for seat bookkeeping. Both are panic values: they signal a
// broken invariant, never a recoverable condition.
var (
	// ErrNoCandidates indicates a seat was transferred to a party whose
	// candidate limit is already reached.
	ErrNoCandidates = errors.New("core: attempt to allocate a seat that will be unoccupied")

	// ErrPoolExhausted indicates a seat was taken from an empty pool.
	ErrPoolExhausted = errors.New("core: seat pool is empty")
)

// Count is the integer type for vote and seat totals.
type Count uint64

// NoLimit is the limit value of an allocation without a candidate cap.
const NoLimit Count = math.MaxUint64

// Votes is the number of votes cast for one party. It is fixed for the
// duration of an apportionment run.
type Votes Count

// Seats is the seat allocation of one party: the number of seats awarded so
// far and the maximum that may be awarded (the length of its candidate list).
//
// A Seats value with limit NoLimit also serves as the pool of seats still
// to be handed out.
type Seats struct {
	awarded Count
	limit   Count
}

// Limited returns an empty allocation that can hold at most limit seats.
func Limited(limit Count) Seats {
	return Seats{awarded: 0, limit: limit}
}

// Unlimited returns an empty allocation without a candidate cap.
func Unlimited() Seats {
	return Limited(NoLimit)
}

// Filled returns an allocation that already holds n seats, without a cap.
// Use it for seat pools and for known (official) distributions.
func Filled(n Count) Seats {
	return Seats{awarded: n, limit: NoLimit}
}

// Count returns the number of seats awarded.
func (s Seats) Count() Count { return s.awarded }

// Limit returns the candidate limit; ok is false when the allocation is
// unbounded.
func (s Seats) Limit() (limit Count, ok bool) {
	return s.limit, s.limit != NoLimit
}

// HasCandidates reports whether at least one more seat can be awarded.
func (s Seats) HasCandidates() bool {
	return s.awarded < s.limit
}

// Transfer moves one seat from pool to s.
//
// Panics with ErrNoCandidates when s is full and with ErrPoolExhausted when
// the pool is empty. The receiver and pool are left untouched on panic.
//
// Complexity: O(1).
func (s *Seats) Transfer(pool *Seats) {
	if !s.HasCandidates() {
		panic(ErrNoCandidates)
	}
	if pool.awarded == 0 {
		panic(ErrPoolExhausted)
	}
	s.awarded++
	pool.awarded--
}

// Cmp compares the awarded counts of s and o (-1, 0, +1). Limits are ignored.
func (s Seats) Cmp(o Seats) int {
	switch {
	case s.awarded < o.awarded:
		return -1
	case s.awarded > o.awarded:
		return 1
	default:
		return 0
	}
}

// Equal reports whether s and o hold the same number of seats.
func (s Seats) Equal(o Seats) bool { return s.awarded == o.awarded }

// String prints "n" for unbounded allocations and "n/limit" otherwise.
func (s Seats) String() string {
	if s.limit == NoLimit {
		return strconv.FormatUint(uint64(s.awarded), 10)
	}
	return strconv.FormatUint(uint64(s.awarded), 10) + "/" + strconv.FormatUint(uint64(s.limit), 10)
}
