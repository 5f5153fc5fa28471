package apportion

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/core"
	"github.com/katalvlaran/apportion/logging"
	"github.com/katalvlaran/apportion/metrics"
)

// Engine runs apportionment formulas with a fixed tie-break strategy,
// logger and metrics collector.
type Engine struct {
	ballot     ballot.Ballot
	log        logging.Logger
	metrics    metrics.Collector
	wholeSeats bool
}

// New builds an Engine from DefaultOptions overridden by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ballot == nil {
		o.Ballot = ballot.NewSeeded(o.Seed)
	}
	return &Engine{
		ballot:     o.Ballot,
		log:        o.Logger,
		metrics:    o.Metrics,
		wholeSeats: o.WholeSeats,
	}
}

// Step performs one step of an apportionment: every party with candidates
// left is scored by crit, and every party sharing the best score receives one
// seat from pool. When more parties are tied than the pool holds, a ballot
// decides which of them are served.
//
// Step returns false when no party is eligible; the caller must stop, the
// remaining seats cannot be filled with crit. An empty pool awards nothing.
//
// Panics with ErrLengthMismatch when votes and seats differ in length.
//
// Implementation:
//   - Stage 1: score parties with HasCandidates(), track the maximum and the
//     indices equal to it (ties are not broken here).
//   - Stage 2: draw min(len(winners), pool) winners and transfer one seat each.
//
// Complexity: O(P) scoring + O(W) ballot, P = parties, W = tied winners.
func (e *Engine) Step(votes []core.Votes, seats []core.Seats, pool *core.Seats, crit Criterion) bool {
	mustShape(votes, seats)

	var (
		best    core.Quality
		found   bool
		winners []int
	)
	for i := range seats {
		if !seats[i].HasCandidates() {
			continue
		}
		q, ok := crit(votes[i], seats[i])
		if !ok {
			continue
		}
		switch c := q.Cmp(best); {
		case !found || c > 0:
			best, found = q, true
			winners = append(winners[:0], i)
		case c == 0:
			winners = append(winners, i)
		}
	}
	if !found {
		return false
	}

	limit := int(min(pool.Count(), core.Count(len(winners))))
	if limit == 0 {
		return true
	}
	for _, k := range e.draw(len(winners), limit) {
		seats[winners[k]].Transfer(pool)
	}
	e.metrics.RecordStep(limit)
	return true
}

// Run repeats Step with crit until pool is empty, then applies the
// absolute-majority correction using the distribution as it was before the
// final step. If a step finds no eligible party, Run stops at once without
// correcting and reports false: the remaining seats stay in pool.
//
// Panics with ErrLengthMismatch when votes and seats differ in length.
//
// Complexity: O(N·P) for N seats in the pool and P parties.
func (e *Engine) Run(votes []core.Votes, seats []core.Seats, pool *core.Seats, crit Criterion) bool {
	mustShape(votes, seats)

	last := make([]core.Seats, len(seats))
	copy(last, seats)

	restAnnounced := false
	for pool.Count() > 0 {
		if !restAnnounced && !wholeSeatsAvailable(votes, seats, *pool) {
			restAnnounced = true
			e.log.Debug("whole seats exhausted", "seats", core.Counts(seats), "rest", pool.Count())
		}

		copy(last, seats)
		if !e.Step(votes, seats, pool, crit) {
			e.log.Debug("no eligible party", "unfilled", pool.Count())
			return false
		}
	}

	e.CorrectMajority(votes, seats, last)
	return true
}

// AllocateWholeSeats hands every party ⌊v·N/V⌋ seats from pool, where N is
// the pool size on entry, skipping parties once they reach their limit.
// The pass is criterion-agnostic. It does nothing when no votes were cast.
// Panics with ErrLengthMismatch when votes and seats differ in length.
//
// Complexity: O(P + N).
func (e *Engine) AllocateWholeSeats(votes []core.Votes, seats []core.Seats, pool *core.Seats) {
	mustShape(votes, seats)
	total := core.TotalVotes(votes)
	if total == 0 {
		return
	}
	n := pool.Count()

	for i, v := range votes {
		// v ≤ total, so the 128-bit quotient always fits in 64 bits.
		hi, lo := bits.Mul64(uint64(v), uint64(n))
		whole, _ := bits.Div64(hi, lo, uint64(total))
		for k := uint64(0); k < whole && seats[i].HasCandidates(); k++ {
			seats[i].Transfer(pool)
		}
	}
	e.log.Debug("whole seats awarded", "seats", core.Counts(seats), "rest", pool.Count())
}

// draw asks the ballot for limit of n candidates and checks its answer.
func (e *Engine) draw(n, limit int) []int {
	picked := e.ballot.Draw(n, limit)
	if err := ballot.Validate(picked, n, limit); err != nil {
		panic(fmt.Errorf("%w: n=%d limit=%d picked=%v", err, n, limit, picked))
	}
	if n > limit {
		e.log.Debug("non-deterministic choice", "candidates", n, "seats", limit, "picked", picked)
		e.metrics.RecordBallot(n, limit)
	}
	return picked
}

// wholeSeatsAvailable reports whether some party still has an average of at
// least one full quota for its next seat: v/(s+1) ≥ V/N.
func wholeSeatsAvailable(votes []core.Votes, seats []core.Seats, pool core.Seats) bool {
	totalSeats := pool.Count() + core.TotalSeats(seats)
	quota := core.Frac(core.TotalVotes(votes), totalSeats)
	for i := range seats {
		if core.Frac(core.Count(votes[i]), seats[i].Count()+1).AtLeast(quota) {
			return true
		}
	}
	return false
}
