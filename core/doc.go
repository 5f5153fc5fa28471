// Package core provides the value types shared by every apportionment formula:
// vote counts, seat allocations with an optional candidate limit, exact
// fractions and the tagged Quality value a scoring criterion produces.
//
// Nothing in this package uses floating point. Every ratio is a Fraction and
// is compared by cross multiplication in 128 bits, so 2/4 == 1/2 and
// Fraction.Cmp cannot overflow. Sums and products formed before a Fraction
// is built (TotalVotes, v·N, s·V) are plain 64-bit arithmetic; the apportion
// package rejects inputs for which they could wrap.
//
// Seat allocations:
//
//	– Limited(n)   zero seats, at most n may be awarded (candidate list length)
//	– Unlimited()  zero seats, no cap
//	– Filled(n)    n seats already awarded, no cap (also used as a seat pool)
//
// Seats only move through Transfer, which takes one seat out of a pool and
// awards it to the receiver. Transfer panics when the receiver is full: that
// can only happen when a scoring criterion ranks a party without candidates
// above one that still has them, which is a programming error.
//
// Example:
//
//	pool := core.Filled(3)
//	party := core.Limited(2)
//	party.Transfer(&pool) // party=1/2, pool=2
//	party.Transfer(&pool) // party=2/2, pool=1
//	party.HasCandidates() // false
//
// Ordering of Seats values considers the awarded count only; the limit is
// not part of equality.
package core
