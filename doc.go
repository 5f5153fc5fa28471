// Package apportion is an exact, integer-only implementation of the seat
// apportionment rules used in Dutch elections, from the first proportional
// election of 1918 to today's national and municipal elections.
//
// What is in the module?
//
//	• Core values: vote counts, seat allocations with candidate limits,
//	  exact fractions compared in 128 bits
//	• The engine: single allocation step, the iterative loop, tie-break
//	  ballots and the absolute-majority correction
//	• The formulas: largest averages (D'Hondt), largest surplus with the 75%
//	  threshold, the national one-whole-seat threshold, the 1918 and 1922
//	  surplus rules and the 1925–1933 Bongaerts rule
//	• Validation of the formulas against official CSV results
//
// Packages:
//
//	core/          Count, Votes, Seats, Fraction and Quality
//	ballot/        tie-break strategies: seeded random, first, recorder
//	apportion/     Engine, options and the formula library
//	config/        YAML election files
//	kiesraad/      official result files and the validator
//	logging/       structured logging over log/slog
//	metrics/       engine metrics, Prometheus collector
//	cmd/apportion  the command-line tool
//
// Quick example (19-seat council, four lists):
//
//	votes := core.VotesOf(40, 30, 20, 10)
//	seats := core.UnlimitedSeats(len(votes))
//	_ = apportion.Allocate(19, votes, seats, apportion.WithBallot(ballot.First{}))
//	//             seats: 8, 6, 4, 1; the last three seats were a four-way tie
//
// No floating point is used anywhere: every quota and average is a fraction
// and every comparison is exact, so results can be checked seat by seat
// against the official outcome.
//
//	go install github.com/katalvlaran/apportion/cmd/apportion@latest
package apportion
