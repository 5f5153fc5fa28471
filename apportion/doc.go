// Package apportion distributes a fixed number of seats among parties in
// proportion to their votes, reproducing the Dutch apportionment rules seat
// by seat.
//
// 🚀 Engine
//
//	Every formula is built from the same primitives:
//	  • Step  – score every party that still has candidates, award one seat to
//	            each party tied for the best score (ballot when seats are scarce)
//	  • Run   – repeat Step until the pool is empty or nobody is eligible, then
//	            apply the absolute-majority correction
//	  • CorrectMajority – a party with more than half the votes but not more
//	            than half the seats takes one seat from a last-step winner
//	  • AllocateWholeSeats – optional fast pass handing out ⌊v·N/V⌋ seats
//
// ✨ Formulas
//
//	AllocatePerAverage  D'Hondt, v/(s+1)                 (bodies of 19+ seats)
//	AllocatePerSurplus  largest surplus with a 75% threshold, then averages
//	Allocate            per average when N ≥ 19, otherwise per surplus
//	AllocateNational    D'Hondt restricted to parties with one whole quota
//	AllocateBongaerts   single-seat surplus with a 75% average threshold (1925–1933)
//	Allocate1918/1922   three surplus rounds around a ½ or ¾ quota threshold
//
// All arithmetic is exact: scores are core.Quality values built from
// integers and core.Fraction ratios; no floating point is involved.
//
// ⚙️ Usage:
//
//	votes := core.VotesOf(40, 30, 20, 10)
//	seats := core.UnlimitedSeats(len(votes))
//	if err := apportion.Allocate(19, votes, seats, apportion.WithBallot(ballot.First{})); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(core.Counts(seats)) // [8 6 4 1]
//
// Tie-breaking is injected with WithBallot (or WithSeed); the default is a
// seeded random ballot, so results are reproducible unless a caller supplies
// its own randomness.
//
// Input bound:
//
//	Scores and thresholds are 64-bit integer products such as v·N and 4·V·N.
//	The formulas return ErrTooLarge when 4·V·N (seats already awarded
//	included) does not fit in 64 bits or the vote sum wraps; the engine
//	primitives (Step, Run, CorrectMajority) assume the caller checked it.
//
// Concurrency:
//
//	An Engine owns its ballot stream and is NOT goroutine-safe. Run
//	independent elections on independent engines and seat slices.
package apportion
