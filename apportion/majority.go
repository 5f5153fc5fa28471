package apportion

import (
	"fmt"

	"github.com/katalvlaran/apportion/core"
)

// CorrectMajority applies the absolute-majority rule: a party that received
// more than half of all votes but not more than half of all seats gets one
// extra seat, taken from a party that won a seat in the final step.
//
// prev must hold the distribution before the final step. The beneficiary is
// the first party (in order) with candidates left, 2v > V and 2s ≤ S. The
// party losing the seat is drawn by ballot among the other parties whose
// count rose since prev. When there is none, nothing changes.
//
// Returns whether a seat was moved. Totals are unchanged either way.
// Panics with ErrLengthMismatch when votes, seats and prev differ in length.
func (e *Engine) CorrectMajority(votes []core.Votes, seats []core.Seats, prev []core.Seats) bool {
	mustShape(votes, seats)
	if len(prev) != len(seats) {
		panic(fmt.Errorf("%w: %d seats, %d previous", ErrLengthMismatch, len(seats), len(prev)))
	}

	totalVotes := core.TotalVotes(votes)
	totalSeats := core.TotalSeats(seats)

	winner := -1
	for i := range seats {
		if seats[i].HasCandidates() &&
			absoluteMajority(core.Count(votes[i]), totalVotes) &&
			!absoluteMajority(seats[i].Count(), totalSeats) {
			winner = i
			break
		}
	}
	if winner < 0 {
		return false
	}

	losers := make([]int, 0, len(seats))
	for i := range seats {
		if i != winner && seats[i].Cmp(prev[i]) > 0 {
			losers = append(losers, i)
		}
	}
	if len(losers) == 0 {
		e.log.Warn("absolute majority correction skipped: no other party won a seat in the final step",
			"party", winner, "seats", seats[winner].Count(), "total", totalSeats)
		e.metrics.RecordCorrection(false)
		return false
	}

	correction := core.Filled(1)
	seats[winner].Transfer(&correction)
	loser := losers[e.draw(len(losers), 1)[0]]
	correction.Transfer(&seats[loser])

	e.log.Info("absolute majority correction performed", "party", winner, "from", loser)
	e.metrics.RecordCorrection(true)
	return true
}

// absoluteMajority reports 2·count > total without overflowing.
func absoluteMajority(count, total core.Count) bool {
	return count > total/2
}
