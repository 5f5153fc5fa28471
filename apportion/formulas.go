package apportion

import "github.com/katalvlaran/apportion/core"

// begin validates the input (shape and range) and prepares the seat pool, running the
// whole-seat pre-pass when enabled.
func (e *Engine) begin(total core.Count, votes []core.Votes, seats []core.Seats) (core.Seats, error) {
	if err := checkShape(votes, seats); err != nil {
		return core.Seats{}, err
	}
	if err := checkRange(total, votes, seats); err != nil {
		return core.Seats{}, err
	}
	pool := core.Filled(total)
	if e.wholeSeats {
		e.AllocateWholeSeats(votes, seats, &pool)
	}
	return pool, nil
}

// finish reports the outcome of a formula run.
func (e *Engine) finish(method string, total core.Count, pool core.Seats) {
	unfilled := pool.Count()
	if unfilled > 0 {
		e.log.Info("seats left unfilled", "method", method, "unfilled", unfilled)
	}
	e.metrics.RecordRun(method, uint64(total-unfilled), uint64(unfilled))
}

// AllocatePerAverage apportions total seats with the D'Hondt method: each
// seat goes to the party with the highest v/(s+1). This is the rule for
// bodies of 19 seats or more.
func (e *Engine) AllocatePerAverage(total core.Count, votes []core.Votes, seats []core.Seats) error {
	pool, err := e.begin(total, votes, seats)
	if err != nil {
		return err
	}
	e.Run(votes, seats, &pool, averages)
	e.finish(MethodAverage.String(), total, pool)
	return nil
}

// AllocatePerSurplus apportions total seats by largest surplus for bodies of
// fewer than 19 seats.
//
// Pass 1 (surplus): a party is eligible while v ≥ s·V/N (it still has a
// surplus) and v ≥ ¾·V/N (it reaches 75% of the quota); the score is
// v − ⌊s·V/N⌋. Whole quotas are handed out first because a full quota scores
// higher than any remainder, and each party gets at most one surplus seat.
//
// Pass 2 (averages), only if seats remain: D'Hondt among parties that may
// still take one more seat. A party reaching the 75% threshold is tested
// against its previous seat count, so it can take at most one extra seat;
// other parties need a surplus of their own.
func (e *Engine) AllocatePerSurplus(total core.Count, votes []core.Votes, seats []core.Seats) error {
	pool, err := e.begin(total, votes, seats)
	if err != nil {
		return err
	}

	var (
		totalVotes = core.TotalVotes(votes)
		hasSurplus = surplusTest(totalVotes, total)
		threshold  = core.Frac(3*totalVotes, 4*total) // ¾ of a quota
	)

	e.Run(votes, seats, &pool, func(v core.Votes, s core.Seats) (core.Quality, bool) {
		n := s.Count()
		if !hasSurplus(v, n) || !whole(v).AtLeast(threshold) {
			return core.Quality{}, false
		}
		return core.Integer(core.Count(v) - n*totalVotes/total), true
	})

	if pool.Count() > 0 {
		e.log.Debug("continuing by averages", "remaining", pool.Count())
		e.Run(votes, seats, &pool, func(v core.Votes, s core.Seats) (core.Quality, bool) {
			n := s.Count()
			var ok bool
			if whole(v).AtLeast(threshold) {
				ok = hasSurplus(v, previous(n))
			} else {
				ok = hasSurplus(v, n)
			}
			if !ok {
				return core.Quality{}, false
			}
			return core.Ratio(core.Count(v), n+1), true
		})
	}

	e.finish(MethodSurplus.String(), total, pool)
	return nil
}

// Allocate selects the averages rule for bodies of at least LargeBodySeats
// seats and the surplus rule otherwise, as the law does.
func (e *Engine) Allocate(total core.Count, votes []core.Votes, seats []core.Seats) error {
	if total >= LargeBodySeats {
		return e.AllocatePerAverage(total, votes, seats)
	}
	return e.AllocatePerSurplus(total, votes, seats)
}

// AllocateNational apportions total seats with D'Hondt restricted to parties
// that reach one whole quota (v ≥ V/N), the rule for the national
// parliament and the European Parliament.
func (e *Engine) AllocateNational(total core.Count, votes []core.Votes, seats []core.Seats) error {
	pool, err := e.begin(total, votes, seats)
	if err != nil {
		return err
	}

	quota := core.Frac(core.TotalVotes(votes), total)
	e.Run(votes, seats, &pool, func(v core.Votes, s core.Seats) (core.Quality, bool) {
		if !whole(v).AtLeast(quota) {
			return core.Quality{}, false
		}
		return core.Ratio(core.Count(v), s.Count()+1), true
	})

	e.finish(MethodNational.String(), total, pool)
	return nil
}

// AllocateBongaerts apportions total seats with the rule in force for the
// national elections of 1925 to 1933: single-seat largest surplus, where a
// party must keep an average of at least ¾ of a quota per seat, followed by
// single-additional-seat D'Hondt for any seats left.
func (e *Engine) AllocateBongaerts(total core.Count, votes []core.Votes, seats []core.Seats) error {
	pool, err := e.begin(total, votes, seats)
	if err != nil {
		return err
	}

	var (
		totalVotes = core.TotalVotes(votes)
		hasSurplus = surplusTest(totalVotes, total)
		threshold  = core.Frac(3*totalVotes, 4*total)
	)

	e.Run(votes, seats, &pool, func(v core.Votes, s core.Seats) (core.Quality, bool) {
		n := s.Count()
		if !hasSurplus(v, n) || !core.Frac(core.Count(v), n+1).AtLeast(threshold) {
			return core.Quality{}, false
		}
		return core.Integer(core.Count(v)*total - n*totalVotes), true
	})

	if pool.Count() > 0 {
		e.log.Debug("continuing by averages", "remaining", pool.Count())
		e.Run(votes, seats, &pool, func(v core.Votes, s core.Seats) (core.Quality, bool) {
			n := s.Count()
			var ok bool
			if n > 0 && core.Frac(core.Count(v), n).AtLeast(threshold) {
				ok = hasSurplus(v, n-1)
			} else {
				ok = hasSurplus(v, n)
			}
			if !ok {
				return core.Quality{}, false
			}
			return core.Ratio(core.Count(v), n+1), true
		})
	}

	e.finish(MethodBongaerts.String(), total, pool)
	return nil
}

// averages is the D'Hondt criterion v/(s+1); every party is eligible.
func averages(v core.Votes, s core.Seats) (core.Quality, bool) {
	return core.Ratio(core.Count(v), s.Count()+1), true
}

// surplusTest returns the predicate v ≥ s·V/N: a party holding s seats has
// not yet used up its votes.
func surplusTest(totalVotes, totalSeats core.Count) func(core.Votes, core.Count) bool {
	return func(v core.Votes, s core.Count) bool {
		return whole(v).AtLeast(core.Frac(s*totalVotes, totalSeats))
	}
}

// whole returns v/1.
func whole(v core.Votes) core.Fraction {
	return core.Frac(core.Count(v), 1)
}

// previous is s−1, or 0 for a party without seats.
func previous(s core.Count) core.Count {
	if s == 0 {
		return 0
	}
	return s - 1
}
