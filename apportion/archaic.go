package apportion

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/apportion/core"
)

// Allocate1918 apportions total seats with the rule of the first election
// under proportional representation: three surplus rounds around a
// threshold of half a quota.
func (e *Engine) Allocate1918(total core.Count, votes []core.Votes, seats []core.Seats) error {
	return e.allocateArchaic(Method1918.String(), core.Frac(1, 2), total, votes, seats)
}

// Allocate1922 is the 1918 rule with the threshold raised to ¾ of a quota.
func (e *Engine) Allocate1922(total core.Count, votes []core.Votes, seats []core.Seats) error {
	return e.allocateArchaic(Method1922.String(), core.Frac(3, 4), total, votes, seats)
}

// AllocateArchaic runs the three-round surplus rule with an arbitrary
// threshold, expressed as a fraction of the quota V/N.
func (e *Engine) AllocateArchaic(threshold core.Fraction, total core.Count, votes []core.Votes, seats []core.Seats) error {
	return e.allocateArchaic("archaic", threshold, total, votes, seats)
}

// archaicRound is one of the three rounds of the archaic rule.
type archaicRound struct {
	offset core.Count // seats disregarded when computing the surplus
	meet   bool       // whether the round serves parties at or above the threshold
}

// archaicRounds in the order the 1917 law applies them: parties meeting the
// threshold get a surplus seat, then a second one, and only after that are
// parties below the threshold considered.
var archaicRounds = [...]archaicRound{
	{offset: 0, meet: true},
	{offset: 1, meet: true},
	{offset: 0, meet: false},
}

// allocateArchaic implements the 1918/1922 family.
//
// In every round a party is eligible when it is on the round's side of the
// threshold (v ≥ t·V/N == meet) and v ≥ (s−offset)·V/N; the score is the
// surplus v·N − (s−offset)·V. A party holding fewer seats than the offset
// takes no part in that round. Rounds run only while seats remain.
func (e *Engine) allocateArchaic(method string, threshold core.Fraction, total core.Count, votes []core.Votes, seats []core.Seats) error {
	if err := checkThreshold(threshold, total, votes); err != nil {
		return err
	}
	pool, err := e.begin(total, votes, seats)
	if err != nil {
		return err
	}

	var (
		totalVotes = core.TotalVotes(votes)
		hasSurplus = surplusTest(totalVotes, total)
		limit      = core.Frac(threshold.Numerator*totalVotes, threshold.Denominator*total)
	)

	for i, round := range archaicRounds {
		if pool.Count() == 0 {
			break
		}
		if i > 0 {
			e.log.Debug("entering next round of surplus apportionment", "round", i+1, "remaining", pool.Count())
		}
		e.Run(votes, seats, &pool, func(v core.Votes, s core.Seats) (core.Quality, bool) {
			n := s.Count()
			if n < round.offset {
				return core.Quality{}, false
			}
			n -= round.offset
			if whole(v).AtLeast(limit) != round.meet || !hasSurplus(v, n) {
				return core.Quality{}, false
			}
			return core.Integer(core.Count(v)*total - n*totalVotes), true
		})
	}

	e.finish(method, total, pool)
	return nil
}

// checkThreshold rejects a threshold whose scaled quota t·V/N would wrap.
func checkThreshold(t core.Fraction, total core.Count, votes []core.Votes) error {
	if err := checkRange(total, votes, nil); err != nil {
		return err
	}
	numHi, _ := bits.Mul64(uint64(t.Numerator), uint64(core.TotalVotes(votes)))
	denHi, _ := bits.Mul64(uint64(t.Denominator), uint64(total))
	if numHi != 0 || denHi != 0 {
		return fmt.Errorf("%w: threshold %v", ErrTooLarge, t)
	}
	return nil
}
